// Package transport - Transport rate calculator
// Rates local, long-haul and container transport. The transport mode is
// inferred from the origin/destination zones unless the caller explicitly
// requested container transport, which is never overridden.
package transport

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"warequote/core/money"
	"warequote/core/quote"
	"warequote/core/rates"
	"warequote/internal/logging"
)

// Calculator prices transport requests
type Calculator struct {
	rates *rates.Table
}

// NewCalculator creates a transport calculator
func NewCalculator(table *rates.Table) *Calculator {
	return &Calculator{rates: table}
}

// Calculate prices a transport request.
// Unresolvable postcodes are a hard failure: no distance can be derived,
// so no quote or follow-up question is meaningful. Missing vehicle,
// duration or container size is soft and produces follow-up questions.
func (c *Calculator) Calculate(req quote.TransportRequest) (*quote.QuoteResult, error) {
	result := quote.NewQuoteResult()

	if req.FromPostcode == "" {
		result.MissingInformation = append(result.MissingInformation, "from_postcode")
		result.AddQuestion("What postcode are we picking up from?")
	}
	if req.ToPostcode == "" {
		result.MissingInformation = append(result.MissingInformation, "to_postcode")
		result.AddQuestion("What postcode are we delivering to?")
	}
	if !result.IsComplete() {
		return result, nil
	}

	from, err := Resolve(req.FromPostcode)
	if err != nil {
		return nil, err
	}
	to, err := Resolve(req.ToPostcode)
	if err != nil {
		return nil, err
	}

	distanceKm := RoadDistanceKm(from, to)

	// Zone inference never overrides an explicit container request.
	transportType := req.TransportType
	if transportType != quote.TransportContainer {
		if SameMetro(from, to) {
			transportType = quote.TransportLocal
		} else {
			transportType = quote.TransportLongHaul
		}
	}

	switch transportType {
	case quote.TransportLocal:
		c.rateLocal(req, result)
	case quote.TransportLongHaul:
		c.rateLongHaul(req, distanceKm, result)
	case quote.TransportContainer:
		c.rateContainer(req, result)
	}

	if !result.IsComplete() {
		return result, nil
	}

	result.AddItem(quote.LineItem{
		Description: "Road tolls",
		Amount:      c.rates.RoadToll,
		Unit:        "flat",
	})
	if req.IsDangerousGoods {
		result.AddItem(quote.LineItem{
			Description: "Dangerous goods transport fee",
			Amount:      c.rates.TransportDGFee,
			Unit:        "flat",
		})
	}

	logging.Debug("transport quote calculated",
		zap.String("mode", string(transportType)),
		zap.String("from", req.FromPostcode),
		zap.String("to", req.ToPostcode),
		zap.Float64("distance_km", distanceKm),
		zap.String("total", result.TotalAmount.StringFixed(2)))
	return result, nil
}

func (c *Calculator) vehicle(req quote.TransportRequest, result *quote.QuoteResult) (rates.VehicleRate, bool) {
	if req.VehicleType == "" {
		result.MissingInformation = append(result.MissingInformation, "vehicle_type")
		result.AddQuestion(fmt.Sprintf("What vehicle do you need? We have %s.", vehicleList(c.rates)))
		return rates.VehicleRate{}, false
	}
	v, ok := c.rates.Vehicles[req.VehicleType]
	if !ok {
		result.MissingInformation = append(result.MissingInformation, "vehicle_type")
		result.AddQuestion(fmt.Sprintf(
			"We don't have a %q; available vehicles are %s. Which would you like?",
			req.VehicleType, vehicleList(c.rates)))
		return rates.VehicleRate{}, false
	}
	return v, true
}

func (c *Calculator) rateLocal(req quote.TransportRequest, result *quote.QuoteResult) {
	v, ok := c.vehicle(req, result)
	if req.DurationHours < 1 {
		result.MissingInformation = append(result.MissingInformation, "duration_hours")
		result.AddQuestion("Roughly how many hours will the job take?")
	}
	if !ok || !result.IsComplete() {
		// Drop any partial state so the invariant holds: missing info
		// means no line items for this service.
		result.LineItems = nil
		result.TotalAmount = decimal.Zero
		return
	}

	hours := req.DurationHours
	if hours < c.rates.LocalMinimumHours {
		hours = c.rates.LocalMinimumHours
		result.AddMessage(fmt.Sprintf(
			"Local transport has a %d hour minimum callout.", c.rates.LocalMinimumHours))
	}

	base := money.MulInt(v.Hourly, hours)
	result.AddItem(quote.LineItem{
		Description: fmt.Sprintf("Local transport - %s (%d hours)", v.DisplayName, hours),
		Amount:      base,
		Quantity:    hours,
		Unit:        "hour",
	})
	result.AddItem(quote.LineItem{
		Description: fmt.Sprintf("Fuel surcharge (%s%%)", c.rates.LocalFuelPct.String()),
		Amount:      money.Percent(base, c.rates.LocalFuelPct),
		Unit:        "flat",
	})
}

func (c *Calculator) rateLongHaul(req quote.TransportRequest, distanceKm float64, result *quote.QuoteResult) {
	v, ok := c.vehicle(req, result)
	if !ok {
		return
	}

	journeys := 1
	if req.ReturnJourney {
		journeys = 2
	}
	billedKm := decimal.NewFromFloat(distanceKm).Mul(decimal.NewFromInt(int64(journeys)))

	base := money.RoundCents(v.PerKm.Mul(billedKm))
	desc := fmt.Sprintf("Long haul transport - %s (%.1f km)", v.DisplayName, distanceKm)
	if req.ReturnJourney {
		desc = fmt.Sprintf("Long haul transport - %s (%.1f km return)", v.DisplayName, distanceKm)
	}
	result.AddItem(quote.LineItem{
		Description: desc,
		Amount:      base,
		Quantity:    journeys,
		Unit:        "journey",
	})
	result.AddItem(quote.LineItem{
		Description: fmt.Sprintf("Fuel surcharge (%s%%)", c.rates.LongHaulFuelPct.String()),
		Amount:      money.Percent(base, c.rates.LongHaulFuelPct),
		Unit:        "flat",
	})
}

func (c *Calculator) rateContainer(req quote.TransportRequest, result *quote.QuoteResult) {
	base, ok := c.rates.ContainerTransportBase[req.ContainerSize]
	if !ok {
		result.MissingInformation = append(result.MissingInformation, "container_size")
		result.AddQuestion("Is that a 20ft or 40ft container?")
		return
	}

	result.AddItem(quote.LineItem{
		Description: fmt.Sprintf("Container transport (%s)", req.ContainerSize),
		Amount:      base,
		Unit:        "container",
	})
	result.AddItem(quote.LineItem{
		Description: fmt.Sprintf("Fuel surcharge (%s%%)", c.rates.ContainerFuelPct.String()),
		Amount:      money.Percent(base, c.rates.ContainerFuelPct),
		Unit:        "flat",
	})
	result.AddItem(quote.LineItem{
		Description: fmt.Sprintf("Terminal fee (%s)", req.ContainerSize),
		Amount:      c.rates.TerminalFee[req.ContainerSize],
		Unit:        "flat",
	})
}

func vehicleList(table *rates.Table) string {
	order := []string{"van", "truck", "semi"}
	list := ""
	for _, v := range order {
		entry, ok := table.Vehicles[v]
		if !ok {
			continue
		}
		if list != "" {
			list += ", "
		}
		list += fmt.Sprintf("%s (%s/hour)", entry.DisplayName, money.Format(entry.Hourly))
	}
	return list
}
