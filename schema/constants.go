package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// Group represents a section of the metric catalog.
	Group string

	// Level represents the qualitative rating attached to a tier.
	Level string

	// TierOp represents the comparison a tier applies to a value.
	TierOp string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All catalog groups supported.
const (
	CommonGroup   Group = "common"
	AdvancedGroup Group = "advanced"
	AllGroup      Group = "all" // default
)

// All levels supported, from best to worst.
const (
	ExcellentLevel Level = "excellent"
	GoodLevel      Level = "good"
	FairLevel      Level = "fair"
	PoorLevel      Level = "poor"
)

// All tier comparisons supported.
const (
	AtLeast   TierOp = ">="
	AtMost    TierOp = "<="
	Above     TierOp = ">"
	Otherwise TierOp = "otherwise" // fallback row, always matches
)

// AllLevels lists every level from best to worst.
var AllLevels = []Level{ExcellentLevel, GoodLevel, FairLevel, PoorLevel}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidGroups lists all valid catalog groups.
var ValidGroups = map[Group]struct{}{
	CommonGroup:   {},
	AdvancedGroup: {},
	AllGroup:      {},
}

// ValidLevels lists all valid levels.
var ValidLevels = map[Level]struct{}{
	ExcellentLevel: {},
	GoodLevel:      {},
	FairLevel:      {},
	PoorLevel:      {},
}

// Display formats shared by the catalog.
var (
	PercentFormat  = Format{Suffix: "%", Decimals: 2}
	CurrencyFormat = Format{Prefix: "R$ ", Decimals: 2}
	MinutesFormat  = Format{Suffix: " minutos", Decimals: 2}
	ScoreFormat    = Format{Decimals: 0}
)
