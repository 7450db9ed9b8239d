package bajaj

import "travelflow/config"

const (
	serviceModeCalc  = "CALC_PREM"
	serviceModeIssue = "ISSUE_POLICY"

	defaultPlan      = "TPHGLD"
	defaultGeography = "Worldwide Including USA and Canada"
	defaultCountry   = "India"
)

// buildPayload assembles the SaveMasterplan body. The same shape serves both
// phases; only pServiceMode and pQuoteNo differ.
func buildPayload(cfg config.ProviderConfig, req PlanRequest, serviceMode, quoteNo string) map[string]any {
	plan := req.Plan
	if plan == "" {
		plan = defaultPlan
	}
	geography := req.GeographicalCover
	if geography == "" {
		geography = defaultGeography
	}
	country := req.CountryName
	if country == "" {
		country = defaultCountry
	}
	journeyFrom := req.JourneyFromDate
	if journeyFrom == "" {
		journeyFrom = req.StartDate
	}
	journeyTo := req.JourneyToDate
	if journeyTo == "" {
		journeyTo = req.EndDate
	}

	return map[string]any{
		"pUserId":      cfg.Username,
		"pPassword":    cfg.Password,
		"pServiceMode": serviceMode,
		"pPayMode":     "AFLOAT",
		"pQuoteNo":     quoteNo,
		"familyflag":   "N",
		"pTravelPlanDtlsList": map[string]any{
			"productCode":        cfg.ProductCode,
			"Product":            "GROUP TRAVEL",
			"StartDate":          req.StartDate,
			"EndDate":            req.EndDate,
			"masterPolicyNumber": cfg.MasterPolicyNo,
			"Plan":               plan,
			"geographicalCover":  geography,
			"countryName":        country,
			"pJourneryDtls": map[string]any{
				"fromDate": journeyFrom,
				"toDate":   journeyTo,
				"noOfDays": req.NoOfDays,
			},
		},
		"pTravellerDtls": req.TravellerDetails,
		"pProposerDtls":  req.ProposerDetails,
		"pTripDetails":   req.TripType,
	}
}
