package domain

import "strings"

// ModifierDimension names an axis of categorical input
type ModifierDimension string

const (
	DimensionPropertyType   ModifierDimension = "PROPERTY_TYPE"
	DimensionLocation       ModifierDimension = "LOCATION"
	DimensionReputation     ModifierDimension = "ARTIST_REPUTATION"
	DimensionCondition      ModifierDimension = "CONDITION"
	DimensionMarketTrend    ModifierDimension = "MARKET_TREND"
	DimensionAuthenticity   ModifierDimension = "AUTHENTICITY"
	DimensionProjectType    ModifierDimension = "PROJECT_TYPE"
	DimensionVerification   ModifierDimension = "VERIFICATION"
	DimensionFundStage      ModifierDimension = "FUND_STAGE"
	DimensionSector         ModifierDimension = "SECTOR"
	DimensionManagerQuality ModifierDimension = "MANAGER_TIER"
)

// Modifier is a categorical selection that scales the base growth rate
type Modifier interface {
	Dimension() ModifierDimension
	Multiplier() float64
}

// EffectiveRate combines the base annual growth rate with every modifier.
// Modifiers multiply rather than add, so the sign of the base rate is kept.
func EffectiveRate(baseRate float64, modifiers ...Modifier) float64 {
	rate := baseRate
	for _, m := range modifiers {
		if m == nil {
			continue
		}
		rate *= m.Multiplier()
	}
	return rate
}

// normalizeCategory lowercases s and strips spaces, dashes and underscores so
// "Blue Chip", "blue-chip" and "BLUE_CHIP" all compare equal
func normalizeCategory(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case ' ', '-', '_':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PropertyType is the real estate property category
type PropertyType string

const (
	PropertyResidential PropertyType = "RESIDENTIAL"
	PropertyCommercial  PropertyType = "COMMERCIAL"
	PropertyIndustrial  PropertyType = "INDUSTRIAL"
	PropertyMixedUse    PropertyType = "MIXED_USE"
)

func (PropertyType) Dimension() ModifierDimension { return DimensionPropertyType }

func (p PropertyType) Multiplier() float64 {
	switch p {
	case PropertyCommercial:
		return 1.2
	case PropertyIndustrial:
		return 1.1
	case PropertyMixedUse:
		return 1.05
	default:
		return 1.0
	}
}

// ParsePropertyType falls back to Residential for unknown input
func ParsePropertyType(s string) PropertyType {
	switch normalizeCategory(s) {
	case "commercial":
		return PropertyCommercial
	case "industrial":
		return PropertyIndustrial
	case "mixeduse":
		return PropertyMixedUse
	default:
		return PropertyResidential
	}
}

// LocationQuality grades the neighbourhood of a property
type LocationQuality string

const (
	LocationPrime    LocationQuality = "PRIME"
	LocationUrban    LocationQuality = "URBAN"
	LocationSuburban LocationQuality = "SUBURBAN"
	LocationRural    LocationQuality = "RURAL"
)

func (LocationQuality) Dimension() ModifierDimension { return DimensionLocation }

func (l LocationQuality) Multiplier() float64 {
	switch l {
	case LocationPrime:
		return 1.25
	case LocationUrban:
		return 1.1
	case LocationRural:
		return 0.8
	default:
		return 1.0
	}
}

// ParseLocationQuality falls back to Suburban for unknown input
func ParseLocationQuality(s string) LocationQuality {
	switch normalizeCategory(s) {
	case "prime":
		return LocationPrime
	case "urban":
		return LocationUrban
	case "rural":
		return LocationRural
	default:
		return LocationSuburban
	}
}

// ArtistReputation is the market standing of the artist
type ArtistReputation string

const (
	ReputationEmerging    ArtistReputation = "EMERGING"
	ReputationEstablished ArtistReputation = "ESTABLISHED"
	ReputationBlueChip    ArtistReputation = "BLUE_CHIP"
)

func (ArtistReputation) Dimension() ModifierDimension { return DimensionReputation }

func (a ArtistReputation) Multiplier() float64 {
	switch a {
	case ReputationEmerging:
		return 1.5
	case ReputationBlueChip:
		return 0.8
	default:
		return 1.0
	}
}

// ParseArtistReputation falls back to Established for unknown input
func ParseArtistReputation(s string) ArtistReputation {
	switch normalizeCategory(s) {
	case "emerging":
		return ReputationEmerging
	case "bluechip":
		return ReputationBlueChip
	default:
		return ReputationEstablished
	}
}

// ArtworkCondition is the physical condition of the artwork
type ArtworkCondition string

const (
	ConditionExcellent ArtworkCondition = "EXCELLENT"
	ConditionGood      ArtworkCondition = "GOOD"
	ConditionFair      ArtworkCondition = "FAIR"
	ConditionPoor      ArtworkCondition = "POOR"
)

func (ArtworkCondition) Dimension() ModifierDimension { return DimensionCondition }

func (c ArtworkCondition) Multiplier() float64 {
	switch c {
	case ConditionGood:
		return 0.9
	case ConditionFair:
		return 0.75
	case ConditionPoor:
		return 0.5
	default:
		return 1.0
	}
}

// ParseArtworkCondition falls back to Excellent for unknown input
func ParseArtworkCondition(s string) ArtworkCondition {
	switch normalizeCategory(s) {
	case "good":
		return ConditionGood
	case "fair":
		return ConditionFair
	case "poor":
		return ConditionPoor
	default:
		return ConditionExcellent
	}
}

// MarketTrend is shared by the real estate and art calculators
type MarketTrend string

const (
	TrendDeclining MarketTrend = "DECLINING"
	TrendStable    MarketTrend = "STABLE"
	TrendGrowing   MarketTrend = "GROWING"
	TrendHot       MarketTrend = "HOT"
)

func (MarketTrend) Dimension() ModifierDimension { return DimensionMarketTrend }

func (t MarketTrend) Multiplier() float64 {
	switch t {
	case TrendDeclining:
		return 0.5
	case TrendStable:
		return 0.8
	case TrendHot:
		return 1.4
	default:
		return 1.0
	}
}

// ParseMarketTrend falls back to Growing for unknown input
func ParseMarketTrend(s string) MarketTrend {
	switch normalizeCategory(s) {
	case "declining":
		return TrendDeclining
	case "stable":
		return TrendStable
	case "hot":
		return TrendHot
	default:
		return TrendGrowing
	}
}

// Authenticity is the provenance status of an artwork
type Authenticity string

const (
	AuthenticityCertified  Authenticity = "CERTIFIED"
	AuthenticityAttributed Authenticity = "ATTRIBUTED"
	AuthenticityUncertain  Authenticity = "UNCERTAIN"
)

func (Authenticity) Dimension() ModifierDimension { return DimensionAuthenticity }

func (a Authenticity) Multiplier() float64 {
	switch a {
	case AuthenticityAttributed:
		return 0.85
	case AuthenticityUncertain:
		return 0.6
	default:
		return 1.0
	}
}

// ParseAuthenticity falls back to Certified for unknown input
func ParseAuthenticity(s string) Authenticity {
	switch normalizeCategory(s) {
	case "attributed":
		return AuthenticityAttributed
	case "uncertain":
		return AuthenticityUncertain
	default:
		return AuthenticityCertified
	}
}

// ProjectType is the kind of carbon offset project
type ProjectType string

const (
	ProjectForestry         ProjectType = "FORESTRY"
	ProjectRenewable        ProjectType = "RENEWABLE"
	ProjectDirectAirCapture ProjectType = "DIRECT_AIR_CAPTURE"
	ProjectMethane          ProjectType = "METHANE"
)

func (ProjectType) Dimension() ModifierDimension { return DimensionProjectType }

func (p ProjectType) Multiplier() float64 {
	switch p {
	case ProjectForestry:
		return 1.1
	case ProjectDirectAirCapture:
		return 1.3
	case ProjectMethane:
		return 0.9
	default:
		return 1.0
	}
}

// ParseProjectType falls back to Renewable for unknown input
func ParseProjectType(s string) ProjectType {
	switch normalizeCategory(s) {
	case "forestry":
		return ProjectForestry
	case "directaircapture", "dac":
		return ProjectDirectAirCapture
	case "methane":
		return ProjectMethane
	default:
		return ProjectRenewable
	}
}

// VerificationStandard is the registry certifying a carbon credit
type VerificationStandard string

const (
	VerificationGoldStandard VerificationStandard = "GOLD_STANDARD"
	VerificationVerra        VerificationStandard = "VERRA"
	VerificationUnverified   VerificationStandard = "UNVERIFIED"
)

func (VerificationStandard) Dimension() ModifierDimension { return DimensionVerification }

func (v VerificationStandard) Multiplier() float64 {
	switch v {
	case VerificationGoldStandard:
		return 1.15
	case VerificationUnverified:
		return 0.7
	default:
		return 1.0
	}
}

// ParseVerificationStandard falls back to Verra for unknown input
func ParseVerificationStandard(s string) VerificationStandard {
	switch normalizeCategory(s) {
	case "goldstandard", "gold":
		return VerificationGoldStandard
	case "unverified":
		return VerificationUnverified
	default:
		return VerificationVerra
	}
}

// FundStage is the private equity strategy
type FundStage string

const (
	StageVenture   FundStage = "VENTURE"
	StageGrowth    FundStage = "GROWTH"
	StageBuyout    FundStage = "BUYOUT"
	StageMezzanine FundStage = "MEZZANINE"
)

func (FundStage) Dimension() ModifierDimension { return DimensionFundStage }

func (f FundStage) Multiplier() float64 {
	switch f {
	case StageVenture:
		return 1.4
	case StageGrowth:
		return 1.2
	case StageMezzanine:
		return 0.8
	default:
		return 1.0
	}
}

// ParseFundStage falls back to Buyout for unknown input
func ParseFundStage(s string) FundStage {
	switch normalizeCategory(s) {
	case "venture", "venturecapital", "vc":
		return StageVenture
	case "growth":
		return StageGrowth
	case "mezzanine":
		return StageMezzanine
	default:
		return StageBuyout
	}
}

// Sector is the industry focus of a private equity fund
type Sector string

const (
	SectorTechnology  Sector = "TECHNOLOGY"
	SectorHealthcare  Sector = "HEALTHCARE"
	SectorIndustrials Sector = "INDUSTRIALS"
	SectorConsumer    Sector = "CONSUMER"
	SectorEnergy      Sector = "ENERGY"
)

func (Sector) Dimension() ModifierDimension { return DimensionSector }

func (s Sector) Multiplier() float64 {
	switch s {
	case SectorTechnology:
		return 1.2
	case SectorHealthcare:
		return 1.1
	case SectorConsumer:
		return 0.95
	case SectorEnergy:
		return 0.9
	default:
		return 1.0
	}
}

// ParseSector falls back to Industrials for unknown input
func ParseSector(s string) Sector {
	switch normalizeCategory(s) {
	case "technology", "tech":
		return SectorTechnology
	case "healthcare":
		return SectorHealthcare
	case "consumer":
		return SectorConsumer
	case "energy":
		return SectorEnergy
	default:
		return SectorIndustrials
	}
}

// ManagerTier is the historical performance quartile of the fund manager
type ManagerTier string

const (
	ManagerTopQuartile    ManagerTier = "TOP_QUARTILE"
	ManagerMedian         ManagerTier = "MEDIAN"
	ManagerBottomQuartile ManagerTier = "BOTTOM_QUARTILE"
)

func (ManagerTier) Dimension() ModifierDimension { return DimensionManagerQuality }

func (m ManagerTier) Multiplier() float64 {
	switch m {
	case ManagerTopQuartile:
		return 1.25
	case ManagerBottomQuartile:
		return 0.7
	default:
		return 1.0
	}
}

// ParseManagerTier falls back to Median for unknown input
func ParseManagerTier(s string) ManagerTier {
	switch normalizeCategory(s) {
	case "topquartile", "top":
		return ManagerTopQuartile
	case "bottomquartile", "bottom":
		return ManagerBottomQuartile
	default:
		return ManagerMedian
	}
}
