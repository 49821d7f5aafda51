package zones

// Mysuru returns the zone table covering the Mysuru urban area. Baseline AQI
// and CO2 factors are curated values, not live readings.
func Mysuru() *Table {
	t, err := NewTable([]Zone{
		{Name: "Devaraja Mohalla", Lat: 12.311, Lon: 76.652, RadiusM: 1200, AQI: 78, CO2Factor: 0.13},
		{Name: "VV Mohalla", Lat: 12.328, Lon: 76.627, RadiusM: 900, AQI: 65, CO2Factor: 0.12},
		{Name: "Kuvempunagar", Lat: 12.287, Lon: 76.640, RadiusM: 1400, AQI: 72, CO2Factor: 0.12},
		{Name: "Jayalakshmipuram", Lat: 12.330, Lon: 76.617, RadiusM: 900, AQI: 68, CO2Factor: 0.11},
		{Name: "Saraswathipuram", Lat: 12.305, Lon: 76.632, RadiusM: 1100, AQI: 70, CO2Factor: 0.12},
		{Name: "Chamundi Hills", Lat: 12.289, Lon: 76.689, RadiusM: 2000, AQI: 55, CO2Factor: 0.10},
		{Name: "Hebbal", Lat: 12.356, Lon: 76.623, RadiusM: 1000, AQI: 74, CO2Factor: 0.13},
		{Name: "Yadavagiri", Lat: 12.314, Lon: 76.660, RadiusM: 800, AQI: 80, CO2Factor: 0.14},
		{Name: "Gokulam", Lat: 12.307, Lon: 76.635, RadiusM: 900, AQI: 69, CO2Factor: 0.12},
		{Name: "Vijayanagar", Lat: 12.290, Lon: 76.610, RadiusM: 1300, AQI: 75, CO2Factor: 0.13},
		{Name: "Hinkal", Lat: 12.345, Lon: 76.680, RadiusM: 1100, AQI: 77, CO2Factor: 0.13},
		{Name: "Chamundipuram", Lat: 12.295, Lon: 76.625, RadiusM: 900, AQI: 73, CO2Factor: 0.12},
		{Name: "Ashokapuram", Lat: 12.280, Lon: 76.635, RadiusM: 1000, AQI: 71, CO2Factor: 0.12},
		{Name: "Vontikoppal", Lat: 12.300, Lon: 76.620, RadiusM: 800, AQI: 67, CO2Factor: 0.11},
		{Name: "Nazarbad", Lat: 12.325, Lon: 76.645, RadiusM: 900, AQI: 76, CO2Factor: 0.13},
		{Name: "Srirampura", Lat: 12.335, Lon: 76.660, RadiusM: 1000, AQI: 79, CO2Factor: 0.14},
		{Name: "Yelwala", Lat: 12.360, Lon: 76.670, RadiusM: 1300, AQI: 66, CO2Factor: 0.12},
		{Name: "Metagalli", Lat: 12.340, Lon: 76.600, RadiusM: 1100, AQI: 70, CO2Factor: 0.12},
		{Name: "Ramakrishnanagar", Lat: 12.295, Lon: 76.645, RadiusM: 800, AQI: 75, CO2Factor: 0.13},
		{Name: "Chamundi Vihar", Lat: 12.300, Lon: 76.670, RadiusM: 1200, AQI: 79, CO2Factor: 0.14},
		{Name: "Gandhinagar", Lat: 12.330, Lon: 76.640, RadiusM: 900, AQI: 72, CO2Factor: 0.12},
		{Name: "Kuvempunagar 2nd Stage", Lat: 12.285, Lon: 76.642, RadiusM: 1200, AQI: 76, CO2Factor: 0.13},
		{Name: "Chamundi Hills Base", Lat: 12.292, Lon: 76.685, RadiusM: 1500, AQI: 58, CO2Factor: 0.10},
		{Name: "Rajiv Nagar", Lat: 12.315, Lon: 76.615, RadiusM: 900, AQI: 70, CO2Factor: 0.12},
		{Name: "Siddarthanagar", Lat: 12.322, Lon: 76.628, RadiusM: 800, AQI: 75, CO2Factor: 0.13},
		{Name: "Manipal Hospital Area", Lat: 12.310, Lon: 76.635, RadiusM: 700, AQI: 80, CO2Factor: 0.14},
	})
	if err != nil {
		// The table above is a compile-time constant; this cannot happen.
		panic(err)
	}
	return t
}
