package centers

// Built-in registries for the reference deployment. City centers are the
// municipal reference points; program centers are the ZASCA workshop
// locations. "Manrique" and "20Julio" are neighborhoods, not cities, but
// carry their own reference points in both classes.

// DefaultCity returns the built-in city-center registry.
func DefaultCity() *Registry {
	return mustRegistry(ClassCity, []Center{
		{Name: "Bucaramanga", Lat: 7.12, Lon: -73.1276},
		{Name: "Medellín", Lat: 6.2527, Lon: -75.5628},
		{Name: "Manrique", Lat: 6.2650487, Lon: -75.5536652},
		{Name: "Cúcuta", Lat: 7.89391, Lon: -72.50782},
		{Name: "20Julio", Lat: 4.5711143, Lon: -74.0943969},
		{Name: "Baranoa", Lat: 10.7966, Lon: -74.9150},
		{Name: "Cali Norte", Lat: 3.4516, Lon: -76.5320},
		{Name: "Cartagena", Lat: 10.3932, Lon: -75.4832},
		{Name: "Caucasia", Lat: 7.9832, Lon: -75.1982},
		{Name: "Ciudad Bolivar", Lat: 4.5795, Lon: -74.1574},
		{Name: "Manizales", Lat: 5.0630, Lon: -75.5028},
		{Name: "Riohacha", Lat: 11.5384, Lon: -72.9168},
		{Name: "Suba", Lat: 4.7208, Lon: -74.0748},
	})
}

// DefaultProgram returns the built-in ZASCA program-center registry.
func DefaultProgram() *Registry {
	return mustRegistry(ClassProgram, []Center{
		{Name: "Bucaramanga", Lat: 7.1049364854763475, Lon: -73.12383197704348},
		{Name: "Manrique", Lat: 6.284881727521926, Lon: -75.54409932364932},
		{Name: "Medellín", Lat: 6.232088566149681, Lon: -75.56902649888393},
		{Name: "Cúcuta", Lat: 7.829409950541552, Lon: -72.46036608947021},
		{Name: "20Julio", Lat: 4.569429291819494, Lon: -74.09478949758527},
		{Name: "Baranoa", Lat: 10.803854499386958, Lon: -74.91244952786113},
		{Name: "Cali Norte", Lat: 3.4703660708293342, Lon: -76.53109251974698},
		{Name: "Cartagena", Lat: 10.408413725517383, Lon: -75.46504629117649},
		{Name: "Caucasia", Lat: 7.996741312367327, Lon: -75.19635027124215},
		{Name: "Ciudad Bolivar", Lat: 4.543213679818289, Lon: -74.1469410119057},
		{Name: "Manizales", Lat: 5.063846037654722, Lon: -75.50186555759247},
		{Name: "Riohacha", Lat: 11.539682147003058, Lon: -72.91511631324943},
		{Name: "Suba", Lat: 4.7461323779336295, Lon: -74.08267727408058},
	})
}
