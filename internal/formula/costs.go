package formula

// Typical Spanish purchase cost ratios. These are estimates within the
// customary ranges, not any bank's exact tariff.
const (
	notaryRate      = 0.003 // 0.2%-0.5% of price
	registryRate    = 0.002 // 0.1%-0.3% of price
	agencyRate      = 0.001 // capped at agencyCap
	agencyCap       = 600
	vatRate         = 0.10  // new builds
	stampDutyRate   = 0.012 // new builds (AJD)
	appraisalFee    = 400
	arrangementRate = 0.005 // bank opening fee, 0.5%-1%
)

// DefaultTransferTaxPct is the resale transfer tax (ITP) used when no
// regional percentage is configured; it varies by region between 6 and 10.
const DefaultTransferTaxPct = 8.0

// CostInputs describes a purchase for cost estimation.
type CostInputs struct {
	Price          float64
	NewBuild       bool    // new build pays VAT + stamp duty instead of ITP
	Agency         bool    // whether an agency handles the paperwork
	TransferTaxPct float64 // regional ITP percentage, resale only
}

// CostBreakdown itemizes the up-front costs of a purchase.
type CostBreakdown struct {
	Notary         float64
	Registry       float64
	Agency         float64
	VAT            float64
	StampDuty      float64
	TransferTax    float64
	Appraisal      float64
	ArrangementFee float64
}

// Total sums all cost items.
func (c CostBreakdown) Total() float64 {
	return c.Notary + c.Registry + c.Agency + c.VAT + c.StampDuty +
		c.TransferTax + c.Appraisal + c.ArrangementFee
}

// EstimatePurchaseCosts estimates the initial costs of buying a property.
func EstimatePurchaseCosts(in CostInputs) CostBreakdown {
	c := CostBreakdown{
		Notary:         in.Price * notaryRate,
		Registry:       in.Price * registryRate,
		Appraisal:      appraisalFee,
		ArrangementFee: in.Price * arrangementRate,
	}

	if in.Agency {
		c.Agency = in.Price * agencyRate
		if c.Agency > agencyCap {
			c.Agency = agencyCap
		}
	}

	if in.NewBuild {
		c.VAT = in.Price * vatRate
		c.StampDuty = in.Price * stampDutyRate
	} else {
		pct := in.TransferTaxPct
		if pct == 0 {
			pct = DefaultTransferTaxPct
		}
		c.TransferTax = in.Price * pct / 100
	}

	return c
}
