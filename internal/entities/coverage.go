package entities

const (
	CoverageMajors   = "majors"
	CoverageExtended = "extended"
	CoverageFull     = "full"
)

const (
	majorsSize   = 10
	extendedSize = 30
)

// masterSymbols is ordered: the first ten are the majors and the first
// thirty make up the extended tier.
var masterSymbols = []string{
	"EURUSD", "GBPUSD", "AUDUSD", "NZDUSD", "JPYUSD",
	"CHFUSD", "CADUSD", "CNYUSD", "HKDUSD", "SGDUSD",
	"SEKUSD", "NOKUSD", "DKKUSD", "PLNUSD", "CZKUSD",
	"HUFUSD", "TRYUSD", "ZARUSD", "MXNUSD", "BRLUSD",
	"INRUSD", "KRWUSD", "TWDUSD", "THBUSD", "MYRUSD",
	"IDRUSD", "PHPUSD", "ILSUSD", "RUBUSD", "SARUSD",
	"AEDUSD", "CLPUSD", "COPUSD", "PENUSD", "ARSUSD",
	"KWDUSD", "QARUSD", "EGPUSD", "PKRUSD", "VNDUSD",
	"BHDUSD", "ISKUSD",
}

// CoverageSymbols returns a fresh copy of the named preset. Unknown and
// empty names resolve to the full list.
func CoverageSymbols(name string) []string {
	var list []string
	switch name {
	case CoverageMajors:
		list = masterSymbols[:majorsSize]
	case CoverageExtended:
		list = masterSymbols[:extendedSize]
	default:
		list = masterSymbols
	}

	out := make([]string, len(list))
	copy(out, list)
	return out
}
