// Package jsonfile persists records in the canonical SafeDrive JSON document:
//
//	{
//	    "Trips":    [{"TripID": "", "Vehicle": "", "Driver": "", "Distance": ""}],
//	    "Vehicles": [{"VehicleID": "", "Model": ""}],
//	    "Drivers":  [{"DriverID": "", "Name": ""}]
//	}
//
// Documents are indented with four spaces and fields keep their declared
// order. Every save replaces the whole file through a temporary file and a
// rename, so a failed write never truncates previously saved records.
//
// The same encoding backs the JSON export.
package jsonfile
