// Package device contains the Device entity: the piece of hardware a service
// order is about.
package device

import (
	"errors"

	"servis/internal/core/domain/model/kernel"
	"servis/internal/pkg/errs"
)

// ErrDeviceIsNotConstructed is returned when a Device instance was not
// created through NewDevice or RestoreDevice.
var ErrDeviceIsNotConstructed = errors.New("Device must be created via NewDevice or RestoreDevice")

// Device describes the unit handed in for repair. It is owned 1:1 by the
// order that created it and is updated in place when the order is edited.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Brand and model must be non-empty
//
// The IMEI is optional; 15 digits are expected but not enforced, because
// operators frequently key in partial numbers from broken devices.
type Device struct {
	id    kernel.UUID
	brand string
	model string
	imei  string

	isConstructed bool
}

// NewDevice creates a validated Device. imei may be empty.
func NewDevice(id kernel.UUID, brand, model, imei string) (*Device, error) {
	d := &Device{isConstructed: true}

	if err := errors.Join(
		d.setID(id),
		d.setBrand(brand),
		d.setModel(model),
	); err != nil {
		return nil, err
	}

	d.imei = imei
	return d, nil
}

// RestoreDevice reconstructs a Device from persistence.
// It applies the same validation as NewDevice.
func RestoreDevice(id kernel.UUID, brand, model, imei string) (*Device, error) {
	return NewDevice(id, brand, model, imei)
}

// Validate ensures the Device was created through a constructor.
func (d *Device) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeviceIsNotConstructed
	}
	return nil
}

// ID returns the device's unique identifier.
func (d *Device) ID() kernel.UUID {
	return d.id
}

// Brand returns the device brand.
func (d *Device) Brand() string {
	return d.brand
}

// Model returns the device model.
func (d *Device) Model() string {
	return d.model
}

// IMEI returns the device IMEI, possibly empty.
func (d *Device) IMEI() string {
	return d.imei
}

func (d *Device) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Device) setBrand(brand string) error {
	if brand == "" {
		return errs.NewValueIsRequiredError("brand")
	}
	d.brand = brand
	return nil
}

func (d *Device) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	d.model = model
	return nil
}
