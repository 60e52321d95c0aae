package services

import (
	"math"

	"shipsync/internal/core/domain/model/measure"
	"shipsync/internal/core/domain/model/order"
	"shipsync/internal/core/domain/model/platform"
	"shipsync/internal/core/domain/model/shipment"
	"shipsync/internal/pkg/errs"
)

// fallbackPackageWeightOunces is the hard floor used when the configured
// default package weight is itself unusable.
const fallbackPackageWeightOunces = 16.0

// ShipmentDefaults are the process-wide shipping defaults, overridable
// per order by whatever the platform payload supplies.
type ShipmentDefaults struct {
	// PackageWeight is the default package weight. A zero value falls
	// back to 16 ounces.
	PackageWeight measure.Weight

	// PackageDimensions is the default dimension triple; nil when the
	// deployment ships without configured dimensions.
	PackageDimensions *measure.Dimensions

	// ShipFrom is the configured origin address used when the platform
	// order carries none.
	ShipFrom shipment.Address

	// ServiceCode is the last-resort shipping service.
	ServiceCode string

	// InsuranceProvider is the provider hint applied when the order has
	// no insurance options of its own.
	InsuranceProvider string
}

// ShipmentBuilder converts a heterogeneous order payload into a
// normalized, carrier-ready shipment request: unit conversion to ounces,
// single or multi-package expansion, and address/service-code resolution
// with configured fallbacks.
//
// The builder is state-free pure construction; it performs no I/O and
// never mutates its inputs.
//
// Example:
//
//	builder := NewShipmentBuilder(defaults)
//	shp, err := builder.Build(remote, record, items, false)
//	if err != nil {
//	    // configuration or validation failure; the order keeps its state
//	    return err
//	}
//	// shp is ready for the label API
type ShipmentBuilder struct {
	defaults ShipmentDefaults
}

// NewShipmentBuilder creates a ShipmentBuilder with the given defaults.
func NewShipmentBuilder(defaults ShipmentDefaults) ShipmentBuilder {
	return ShipmentBuilder{defaults: defaults}
}

// Build assembles the shipment request for one order.
//
// Parameters:
//   - remote: the authoritative platform order detail (addresses, hints)
//   - record: the locally stored order (fallback address fields and the
//     requested-service fallback)
//   - items: the resolved line items to package
//   - multipack: one package per unit of quantity instead of a single
//     aggregated package
//
// Returns a configuration error when neither the order nor the defaults
// supply a usable ship-from address or service code, and a validation
// error when the ship-to address lacks a first street line.
func (b ShipmentBuilder) Build(
	remote *platform.Order,
	record *order.Order,
	items []order.Item,
	multipack bool,
) (shipment.Shipment, error) {
	shipTo, err := b.mapShipTo(remote, record)
	if err != nil {
		return shipment.Shipment{}, err
	}

	shipFrom, err := b.mapShipFrom(remote)
	if err != nil {
		return shipment.Shipment{}, err
	}

	serviceCode := b.resolveServiceCode(remote, record)
	if serviceCode == "" {
		return shipment.Shipment{}, errs.NewConfigurationError("service code")
	}

	shp := shipment.Shipment{
		ServiceCode:       serviceCode,
		ShipTo:            shipTo,
		ShipFrom:          shipFrom,
		Packages:          b.ensurePackages(b.buildPackages(items, multipack)),
		InsuranceProvider: b.resolveInsuranceProvider(remote),
	}
	if remote != nil {
		shp.CarrierCode = remote.CarrierCode
		shp.Confirmation = remote.Confirmation
		shp.ShipDate = remote.ShipDate
	}
	return shp, nil
}

// DefaultPackage returns the configured default package, falling back to
// the 16 ounce floor when the configured weight is unusable.
func (b ShipmentBuilder) DefaultPackage() shipment.Package {
	weight := b.defaults.PackageWeight
	if weight.IsZero() {
		weight = measure.Weight{Value: fallbackPackageWeightOunces, Unit: measure.Ounce}
	}

	pkg := shipment.Package{Weight: weight}
	if b.defaults.PackageDimensions != nil && b.defaults.PackageDimensions.Valid() {
		dims := *b.defaults.PackageDimensions
		pkg.Dimensions = &dims
	}
	return pkg
}

// buildPackages expands items into canonical packages.
//
// Multipack mode yields one package per unit of quantity per item, each
// carrying that item's own weight, dimensions and insured value with
// per-field fallback to the defaults. Single-package mode aggregates the
// quantity-weighted total weight in ounces, rounded to two decimals, into
// one package whose dimensions come from the first item or the default.
func (b ShipmentBuilder) buildPackages(items []order.Item, multipack bool) []shipment.Package {
	if len(items) == 0 {
		return nil
	}

	if multipack {
		packages := make([]shipment.Package, 0, len(items))
		for _, item := range items {
			for i := 0; i < item.EffectiveQuantity(); i++ {
				packages = append(packages, b.packageForItem(item))
			}
		}
		return packages
	}

	aggregated := b.DefaultPackage()

	total := 0.0
	for _, item := range items {
		if item.Weight != nil {
			total += item.Weight.Ounces() * float64(item.EffectiveQuantity())
		}
	}
	if total > 0 {
		aggregated.Weight = measure.Weight{Value: round2(total), Unit: measure.Ounce}
	}

	if items[0].Dimensions != nil && items[0].Dimensions.Valid() {
		dims := *items[0].Dimensions
		aggregated.Dimensions = &dims
	}

	return []shipment.Package{aggregated}
}

// packageForItem builds one package from a single item, falling back to
// the default package per field independently.
func (b ShipmentBuilder) packageForItem(item order.Item) shipment.Package {
	pkg := b.DefaultPackage()

	if item.Weight != nil && !item.Weight.IsZero() {
		pkg.Weight = *item.Weight
	}
	if item.Dimensions != nil && item.Dimensions.Valid() {
		dims := *item.Dimensions
		pkg.Dimensions = &dims
	}
	if insured := resolveInsuredValue(item); insured != nil {
		pkg.InsuredValue = insured
	}
	return pkg
}

// resolveInsuredValue prefers the item's explicit insured value and
// falls back to the unit price. When neither is positive it attaches
// nothing; an insured value is never fabricated.
func resolveInsuredValue(item order.Item) *shipment.InsuredAmount {
	if item.InsuredValue != nil && item.InsuredValue.Amount.Sign() > 0 {
		return shipment.NewInsuredAmount(*item.InsuredValue)
	}
	if fallback, ok := measure.NewInsuredValue(item.UnitPrice, measure.DefaultCurrency); ok {
		return shipment.NewInsuredAmount(fallback)
	}
	return nil
}

// ensurePackages substitutes one default package when normalization
// yielded none; the carrier API rejects empty-package shipments.
func (b ShipmentBuilder) ensurePackages(packages []shipment.Package) []shipment.Package {
	if len(packages) > 0 {
		return packages
	}
	return []shipment.Package{b.DefaultPackage()}
}

// mapShipTo builds the destination address from the remote order,
// filling gaps from the stored snapshot. The remote address must carry a
// first street line; the snapshot has none to offer.
func (b ShipmentBuilder) mapShipTo(remote *platform.Order, record *order.Order) (shipment.Address, error) {
	var addr *platform.Address
	if remote != nil {
		addr = remote.ShipTo
	}
	if !addr.HasStreet() {
		return shipment.Address{}, errs.NewValueIsInvalidErrorWithCause(
			"ship-to address",
			errs.NewValueIsRequiredError("address line 1"),
		)
	}

	converted := convertAddress(addr)
	if record != nil {
		snapshot := record.ShipTo()
		if converted.Name == "" {
			converted.Name = snapshot.Name
		}
		if converted.CityLocality == "" {
			converted.CityLocality = snapshot.City
		}
		if converted.StateProvince == "" {
			converted.StateProvince = snapshot.State
		}
		if converted.PostalCode == "" {
			converted.PostalCode = snapshot.PostalCode
		}
		if converted.CountryCode == "" {
			converted.CountryCode = snapshot.Country
		}
	}
	return converted, nil
}

// mapShipFrom prefers the platform order's origin address and falls back
// to the configured default. A default without a first street line is a
// configuration error, never silently defaulted past.
func (b ShipmentBuilder) mapShipFrom(remote *platform.Order) (shipment.Address, error) {
	if remote != nil && remote.ShipFrom.HasStreet() {
		return convertAddress(remote.ShipFrom), nil
	}
	if !b.defaults.ShipFrom.HasStreet() {
		return shipment.Address{}, errs.NewConfigurationError("ship-from address")
	}
	return b.defaults.ShipFrom, nil
}

// resolveServiceCode applies the resolution order: explicit platform
// service code, then the order's stored requested service, then the
// configured default.
func (b ShipmentBuilder) resolveServiceCode(remote *platform.Order, record *order.Order) string {
	if remote != nil && remote.ServiceCode != "" {
		return remote.ServiceCode
	}
	if record != nil && record.RequestedService() != "" {
		return record.RequestedService()
	}
	return b.defaults.ServiceCode
}

// resolveInsuranceProvider prefers the order's insurance options over the
// configured default provider.
func (b ShipmentBuilder) resolveInsuranceProvider(remote *platform.Order) string {
	if remote != nil && remote.InsuranceOptions != nil && remote.InsuranceOptions.Provider != "" {
		return remote.InsuranceOptions.Provider
	}
	return b.defaults.InsuranceProvider
}

// convertAddress maps a platform address onto the carrier shape,
// normalizing the residential flag to the binary token. Empty fields
// disappear at encode time via omitempty.
func convertAddress(a *platform.Address) shipment.Address {
	if a == nil {
		return shipment.Address{}
	}
	return shipment.Address{
		Name:                 a.Name,
		CompanyName:          a.Company,
		Phone:                a.Phone,
		AddressLine1:         a.Line1(),
		AddressLine2:         a.Line2(),
		AddressLine3:         a.Line3(),
		CityLocality:         a.City,
		StateProvince:        a.State,
		PostalCode:           a.PostalCode,
		CountryCode:          a.Country,
		ResidentialIndicator: shipment.NormalizeYesNo(a.Residential),
	}
}

// round2 rounds to two decimal places, the precision the carrier API
// expects for package weights.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
