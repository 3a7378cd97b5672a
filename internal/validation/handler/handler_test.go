package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"cardcheck/internal/validation/models"
	dErrors "cardcheck/pkg/domain-errors"
	"cardcheck/pkg/testutil"
)

type fakeService struct {
	validateFn      func(ctx context.Context, number string) *models.Result
	validateBatchFn func(ctx context.Context, numbers []string) ([]*models.Result, error)

	lastNumber  string
	lastNumbers []string
}

func (f *fakeService) Validate(ctx context.Context, number string) *models.Result {
	f.lastNumber = number
	if f.validateFn != nil {
		return f.validateFn(ctx, number)
	}
	return &models.Result{Valid: true, Issuer: "Visa", Length: len(number), Fingerprint: models.Fingerprint(number)}
}

func (f *fakeService) ValidateBatch(ctx context.Context, numbers []string) ([]*models.Result, error) {
	f.lastNumbers = numbers
	if f.validateBatchFn != nil {
		return f.validateBatchFn(ctx, numbers)
	}
	results := make([]*models.Result, len(numbers))
	for i, number := range numbers {
		results[i] = f.Validate(ctx, number)
	}
	return results, nil
}

type ValidationHandlerSuite struct {
	suite.Suite
	service *fakeService
	router  chi.Router
}

func TestValidationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ValidationHandlerSuite))
}

func (s *ValidationHandlerSuite) SetupTest() {
	s.service = &fakeService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.router = chi.NewRouter()
	New(s.service, logger).Register(s.router)
}

func (s *ValidationHandlerSuite) post(path, body string) *httptest.ResponseRecorder {
	req := testutil.NewRequestWithBody(s.T(), http.MethodPost, path, body)
	return testutil.DoRequest(s.router, req)
}

func (s *ValidationHandlerSuite) TestValidate() {
	s.Run("valid card returns 200", func() {
		rec := s.post("/cards/validate", `{"number":"4111111111111111"}`)

		s.Require().Equal(http.StatusOK, rec.Code)
		var result models.Result
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &result))
		s.True(result.Valid)
		s.Equal("Visa", result.Issuer)
		s.Equal("4111111111111111", s.service.lastNumber)
	})

	s.Run("rejected card is still a 200 with an error code", func() {
		s.service.validateFn = func(context.Context, string) *models.Result {
			return &models.Result{Valid: false, ErrorCode: models.CodeInvalidLuhn, Length: 16}
		}

		rec := s.post("/cards/validate", `{"number":"4111111111111112"}`)

		s.Require().Equal(http.StatusOK, rec.Code)
		var result models.Result
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &result))
		s.False(result.Valid)
		s.Equal(models.CodeInvalidLuhn, result.ErrorCode)
	})

	s.Run("number is trimmed before the service sees it", func() {
		rec := s.post("/cards/validate", `{"number":"  4111111111111111  "}`)

		s.Require().Equal(http.StatusOK, rec.Code)
		s.Equal("4111111111111111", s.service.lastNumber)
	})

	s.Run("missing number returns 400", func() {
		rec := s.post("/cards/validate", `{"number":""}`)

		s.Require().Equal(http.StatusBadRequest, rec.Code)
		s.assertErrorEnvelope(rec, dErrors.CodeValidation)
	})

	s.Run("oversized number returns 400", func() {
		rec := s.post("/cards/validate", `{"number":"`+strings.Repeat("4", 65)+`"}`)

		s.Require().Equal(http.StatusBadRequest, rec.Code)
		s.assertErrorEnvelope(rec, dErrors.CodeValidation)
	})

	s.Run("malformed JSON returns 400", func() {
		rec := s.post("/cards/validate", `{"number":`)

		s.Require().Equal(http.StatusBadRequest, rec.Code)
		s.assertErrorEnvelope(rec, dErrors.CodeBadRequest)
	})
}

func (s *ValidationHandlerSuite) TestValidateBatch() {
	s.Run("results preserve request order", func() {
		rec := s.post("/cards/validate/batch", `{"numbers":["4111111111111111","340000000000009"]}`)

		s.Require().Equal(http.StatusOK, rec.Code)
		var resp ValidateBatchResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Require().Len(resp.Results, 2)
		s.Equal([]string{"4111111111111111", "340000000000009"}, s.service.lastNumbers)
	})

	s.Run("empty batch returns 400", func() {
		rec := s.post("/cards/validate/batch", `{"numbers":[]}`)

		s.Require().Equal(http.StatusBadRequest, rec.Code)
		s.assertErrorEnvelope(rec, dErrors.CodeValidation)
	})

	s.Run("empty entry returns 400", func() {
		rec := s.post("/cards/validate/batch", `{"numbers":["4111111111111111",""]}`)

		s.Require().Equal(http.StatusBadRequest, rec.Code)
		s.assertErrorEnvelope(rec, dErrors.CodeValidation)
	})

	s.Run("service error maps through the error envelope", func() {
		s.service.validateBatchFn = func(context.Context, []string) ([]*models.Result, error) {
			return nil, dErrors.New(dErrors.CodeTimeout, "batch validation cancelled")
		}

		rec := s.post("/cards/validate/batch", `{"numbers":["4111111111111111"]}`)

		s.Require().Equal(http.StatusGatewayTimeout, rec.Code)
		s.assertErrorEnvelope(rec, dErrors.CodeTimeout)
	})
}

func (s *ValidationHandlerSuite) assertErrorEnvelope(rec *httptest.ResponseRecorder, code dErrors.Code) {
	s.T().Helper()
	testutil.AssertErrorCode(s.T(), rec, string(code))
}
