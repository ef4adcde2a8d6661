package domain

// Trip is a single recorded journey.
// Vehicle and Driver are free text and are not checked against the
// registered vehicles and drivers. Distance is kept exactly as entered;
// only the summary interprets it as a number.
type Trip struct {
	TripID   string `json:"TripID"`
	Vehicle  string `json:"Vehicle"`
	Driver   string `json:"Driver"`
	Distance string `json:"Distance"`
}

// Vehicle is a registered vehicle.
type Vehicle struct {
	VehicleID string `json:"VehicleID"`
	Model     string `json:"Model"`
}

// Driver is a registered driver.
type Driver struct {
	DriverID string `json:"DriverID"`
	Name     string `json:"Name"`
}

// TripFields lists the trip columns in their canonical order.
var TripFields = []string{"TripID", "Vehicle", "Driver", "Distance"}

// Fields returns the trip values in TripFields order.
func (t Trip) Fields() []string {
	return []string{t.TripID, t.Vehicle, t.Driver, t.Distance}
}

// Records holds the three append-only collections in insertion order.
// IDs are not unique and duplicates are kept.
type Records struct {
	Trips    []Trip    `json:"Trips"`
	Vehicles []Vehicle `json:"Vehicles"`
	Drivers  []Driver  `json:"Drivers"`
}

// Clone returns a deep copy whose slices share nothing with r.
// Nil collections become empty slices so the copy always serialises as [].
func (r Records) Clone() Records {
	out := Records{
		Trips:    make([]Trip, len(r.Trips)),
		Vehicles: make([]Vehicle, len(r.Vehicles)),
		Drivers:  make([]Driver, len(r.Drivers)),
	}
	copy(out.Trips, r.Trips)
	copy(out.Vehicles, r.Vehicles)
	copy(out.Drivers, r.Drivers)
	return out
}

// IsEmpty reports whether no records of any kind are held.
func (r Records) IsEmpty() bool {
	return len(r.Trips) == 0 && len(r.Vehicles) == 0 && len(r.Drivers) == 0
}
