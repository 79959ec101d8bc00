package fiatconnect

import (
	"encoding/json"
	"fmt"
)

// ParseQuoteResponse decodes and validates a quote response body
func ParseQuoteResponse(data []byte) (*QuoteResponse, error) {
	var resp QuoteResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, &SchemaValidationError{Cause: fmt.Errorf("decoding quote response: %w", err)}
	}
	if err := resp.Validate(); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Validate checks the fields the widget relies on and returns a
// *SchemaValidationError listing every problem found
func (r *QuoteResponse) Validate() error {
	var issues []Issue
	add := func(path, msg string) {
		issues = append(issues, Issue{Path: path, Message: msg})
	}

	if r.Quote == nil {
		add("quote", "required")
	} else {
		if r.Quote.QuoteID == "" {
			add("quote.quoteId", "required")
		}
		if r.Quote.FiatAmount == "" {
			add("quote.fiatAmount", "required")
		}
		if r.Quote.TransferType == "" {
			add("quote.transferType", "required")
		}
	}

	if r.Kyc == nil {
		add("kyc", "required")
	} else {
		if r.Kyc.KycRequired == nil {
			add("kyc.kycRequired", "required")
		}
		if r.Kyc.KycSchemas == nil {
			add("kyc.kycSchemas", "required")
		}
		for i, schema := range r.Kyc.KycSchemas {
			path := fmt.Sprintf("kyc.kycSchemas[%d]", i)
			if schema.KycSchema == "" {
				add(path+".kycSchema", "required")
			}
			if err := schema.AllowedValues.validate(); err != nil {
				add(path+".allowedValues", err.Error())
			}
		}
	}

	if r.FiatAccount == nil {
		add("fiatAccount", "required")
	} else {
		for _, entry := range r.FiatAccount.Entries {
			path := "fiatAccount." + entry.Type
			if entry.Detail.FiatAccountSchemas == nil {
				add(path+".fiatAccountSchemas", "required")
			}
			for i, schema := range entry.Detail.FiatAccountSchemas {
				if err := schema.AllowedValues.validate(); err != nil {
					add(fmt.Sprintf("%s.fiatAccountSchemas[%d].allowedValues", path, i), err.Error())
				}
			}
		}
	}

	if len(issues) > 0 {
		return &SchemaValidationError{Issues: issues}
	}
	return nil
}
