package card

// Issuer identifies the payment network that issued a card.
//
// The set of networks is fixed at compile time and may grow in future
// releases, so consumers should not assume it is exhaustive. Each issuer
// carries two static facts: a display name and the set of total PAN lengths
// it accepts.
type Issuer uint8

// Supported payment networks.
const (
	IssuerUnknown Issuer = iota
	AmericanExpress
	ChinaTUnion
	UnionPay
	DinersClub
	Discover
	UkrCard
	RuPay
	InterPayment
	InstaPayment
	JCB
	MaestroUK
	Maestro
	Dankort
	Mir
	Borica
	Mastercard
	Troy
	Visa
	VisaElectron
	UATP
	Verve
	LankaPay
	GPN
)

var issuerNames = map[Issuer]string{
	AmericanExpress: "American Express",
	ChinaTUnion:     "China T-Union",
	UnionPay:        "UnionPay",
	DinersClub:      "Diners Club",
	Discover:        "Discover",
	UkrCard:         "UkrCard",
	RuPay:           "RuPay",
	InterPayment:    "InterPayment",
	InstaPayment:    "InstaPayment",
	JCB:             "JCB",
	MaestroUK:       "Maestro UK",
	Maestro:         "Maestro",
	Dankort:         "Dankort",
	Mir:             "MIR",
	Borica:          "Borica",
	Mastercard:      "Mastercard",
	Troy:            "Troy",
	Visa:            "Visa",
	VisaElectron:    "Visa Electron",
	UATP:            "UATP",
	Verve:           "Verve",
	LankaPay:        "LankaPay",
	GPN:             "GPN",
}

// Name returns the display name of the network, e.g. "Visa" or "UkrCard".
// Intended for diagnostics and UI; it plays no role in validation.
func (i Issuer) Name() string {
	if name, ok := issuerNames[i]; ok {
		return name
	}
	return "Unknown"
}

// String implements fmt.Stringer.
func (i Issuer) String() string {
	return i.Name()
}

// lengthValid reports whether a PAN of n digits is acceptable for the network.
func (i Issuer) lengthValid(n int) bool {
	switch i {
	case AmericanExpress:
		return n == 15
	case ChinaTUnion:
		return n == 19
	case UnionPay:
		return n >= 16 && n <= 19
	case DinersClub:
		return n >= 14 && n <= 19
	case Discover:
		return n >= 16 && n <= 19
	case UkrCard:
		return n >= 16 && n <= 19
	case RuPay:
		return n == 16
	case InterPayment:
		return n >= 16 && n <= 19
	case InstaPayment:
		return n == 16
	case JCB:
		return n >= 16 && n <= 19
	case MaestroUK:
		return n >= 12 && n <= 19
	case Maestro:
		return n >= 12 && n <= 19
	case Dankort:
		return n == 16
	case Mir:
		return n >= 16 && n <= 19
	case Borica:
		return n == 16
	case Mastercard:
		return n == 16
	case Troy:
		return n == 16
	case Visa:
		return n == 13 || n == 16 || n == 19
	case VisaElectron:
		return n == 16
	case UATP:
		return n == 15
	case Verve:
		return n == 16 || n == 18 || n == 19
	case LankaPay:
		return n == 16
	case GPN:
		return n == 16 || n == 18 || n == 19
	default:
		return false
	}
}

// Lengths enumerates the total PAN lengths the network accepts, in ascending
// order. All supported networks issue PANs between minPANDigits and
// maxPANDigits digits.
func (i Issuer) Lengths() []int {
	var lengths []int
	for n := minPANDigits; n <= maxPANDigits; n++ {
		if i.lengthValid(n) {
			lengths = append(lengths, n)
		}
	}
	return lengths
}

// Issuers returns every supported network in declaration order.
func Issuers() []Issuer {
	issuers := make([]Issuer, 0, len(issuerNames))
	for i := AmericanExpress; i <= GPN; i++ {
		issuers = append(issuers, i)
	}
	return issuers
}

// IINRange is a closed interval of numeric prefixes claimed by a network,
// expressed at its own prefix width (e.g. the 4-digit interval 3528..3589
// belongs to JCB).
type IINRange struct {
	Low    uint32 `json:"low"`
	High   uint32 `json:"high"`
	Width  int    `json:"width"`
	issuer Issuer
}

// Issuer returns the network that claims the range.
func (r IINRange) Issuer() Issuer {
	return r.issuer
}

// IINRanges returns the prefix ranges claimed by the network, widest prefixes
// first. Because classification resolves overlaps by priority, a range listed
// here may be shadowed in part by a more specific range of another network.
func (i Issuer) IINRanges() []IINRange {
	var ranges []IINRange
	for _, tier := range iinTiers {
		for _, r := range tier.ranges {
			if r.issuer == i {
				ranges = append(ranges, IINRange{Low: r.lo, High: r.hi, Width: tier.width, issuer: i})
			}
		}
	}
	return ranges
}

type iinRange struct {
	lo, hi uint32
	issuer Issuer
}

// iinTier groups ranges of one prefix width. An 8-digit IIN is reduced to the
// tier's width by integer division before matching.
type iinTier struct {
	width  int
	div    uint32
	ranges []iinRange
}

// iinTiers is the issuer identification table. Tiers are consulted in strict
// decreasing prefix width (8, 6, 4, 3, 2, 1) and ranges within a tier in
// declaration order; the first match wins. The ordering is load-bearing: it
// lets a narrow range (the 8-digit UkrCard window) take priority over broad
// ranges (RuPay's and GPN's 2-digit claims on 60..63) that contain it.
// Source data mirrors the payment card number IIN assignments on Wikipedia.
var iinTiers = []iinTier{
	{width: 8, div: 1, ranges: []iinRange{
		{60400100, 60420099, UkrCard},
	}},
	{width: 6, div: 100, ranges: []iinRange{
		{506099, 506198, Verve},
		{650002, 650027, Verve},
		{507865, 507964, Verve},
		{622126, 622925, Discover},
		{417500, 417500, VisaElectron},
		{357111, 357111, LankaPay},
		{676770, 676770, MaestroUK},
		{676774, 676774, MaestroUK},
	}},
	{width: 4, div: 10000, ranges: []iinRange{
		{6011, 6011, Discover},
		{3528, 3589, JCB},
		{6759, 6759, MaestroUK},
		{5018, 5018, Maestro},
		{5020, 5020, Maestro},
		{5038, 5038, Maestro},
		{5893, 5893, Maestro},
		{6304, 6304, Maestro},
		{6761, 6763, Maestro},
		{5019, 5019, Dankort},
		{2200, 2204, Mir},
		{2205, 2205, Borica},
		{2221, 2720, Mastercard},
		{9792, 9792, Troy},
		{4026, 4026, VisaElectron},
		{4508, 4508, VisaElectron},
		{4844, 4844, VisaElectron},
		{4913, 4913, VisaElectron},
		{4917, 4917, VisaElectron},
		{1946, 1946, GPN},
	}},
	{width: 3, div: 100000, ranges: []iinRange{
		{644, 649, Discover},
		{508, 508, RuPay},
		{636, 636, InterPayment},
		{637, 639, InstaPayment},
	}},
	{width: 2, div: 1000000, ranges: []iinRange{
		{34, 34, AmericanExpress},
		{37, 37, AmericanExpress},
		{31, 31, ChinaTUnion},
		{62, 62, UnionPay},
		{30, 30, DinersClub},
		{36, 36, DinersClub},
		{38, 39, DinersClub},
		{65, 65, Discover},
		{60, 60, RuPay},
		{81, 82, RuPay},
		{51, 55, Mastercard},
		{50, 50, GPN},
		{56, 56, GPN},
		{58, 58, GPN},
		{60, 63, GPN},
	}},
	{width: 1, div: 10000000, ranges: []iinRange{
		{4, 4, Visa},
		{1, 1, UATP},
	}},
}

// classify matches an 8-digit IIN against the table. Returns IssuerUnknown
// when no range at any width claims the prefix.
func classify(iin uint32) Issuer {
	for _, tier := range iinTiers {
		prefix := iin / tier.div
		for _, r := range tier.ranges {
			if prefix >= r.lo && prefix <= r.hi {
				return r.issuer
			}
		}
	}
	return IssuerUnknown
}
