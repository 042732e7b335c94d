package repositories

import "flight-sun-service/internal/domain"

func airport(code, name, city, country string, lat, lon float64) domain.Airport {
	return domain.Airport{
		Code:     code,
		Name:     name,
		City:     city,
		Country:  country,
		Location: domain.GeoPoint{Latitude: lat, Longitude: lon},
	}
}

// BuiltinAirports returns the bundled European airport registry.
func BuiltinAirports() []domain.Airport {
	return []domain.Airport{
		airport("LHR", "Heathrow", "London", "UK", 51.4700, -0.4543),
		airport("CDG", "Charles de Gaulle", "Paris", "France", 49.0097, 2.5479),
		airport("FRA", "Frankfurt", "Frankfurt", "Germany", 50.0379, 8.5622),
		airport("AMS", "Schiphol", "Amsterdam", "Netherlands", 52.3105, 4.7683),
		airport("MAD", "Barajas", "Madrid", "Spain", 40.4983, -3.5676),
		airport("BCN", "El Prat", "Barcelona", "Spain", 41.2974, 2.0833),
		airport("FCO", "Fiumicino", "Rome", "Italy", 41.8045, 12.2508),
		airport("MXP", "Malpensa", "Milan", "Italy", 45.6306, 8.7281),
		airport("ZRH", "Zurich", "Zurich", "Switzerland", 47.4588, 8.5559),
		airport("VIE", "Schwechat", "Vienna", "Austria", 48.1102, 16.5697),
		airport("CPH", "Kastrup", "Copenhagen", "Denmark", 55.6180, 12.6508),
		airport("ARN", "Arlanda", "Stockholm", "Sweden", 59.6498, 17.9238),
		airport("OSL", "Gardermoen", "Oslo", "Norway", 60.1975, 11.1004),
		airport("HEL", "Helsinki-Vantaa", "Helsinki", "Finland", 60.3172, 24.9633),
		airport("WAW", "Chopin", "Warsaw", "Poland", 52.1657, 20.9671),
		airport("PRG", "Václav Havel", "Prague", "Czech Republic", 50.1008, 14.2600),
		airport("BUD", "Ferenc Liszt", "Budapest", "Hungary", 47.4369, 19.2556),
		airport("IST", "Istanbul", "Istanbul", "Turkey", 41.2751, 28.7519),
		airport("ATH", "Eleftherios Venizelos", "Athens", "Greece", 37.9364, 23.9445),
		airport("LIS", "Portela", "Lisbon", "Portugal", 38.7813, -9.1359),
		airport("OPO", "Francisco Sá Carneiro", "Porto", "Portugal", 41.2481, -8.6814),
		airport("DUB", "Dublin", "Dublin", "Ireland", 53.4213, -6.2701),
		airport("BRU", "Brussels", "Brussels", "Belgium", 50.9014, 4.4844),
		airport("GVA", "Geneva", "Geneva", "Switzerland", 46.2381, 6.1089),
		airport("LUX", "Luxembourg", "Luxembourg", "Luxembourg", 49.6266, 6.2115),
		airport("KEF", "Keflavík", "Reykjavik", "Iceland", 63.9850, -22.6056),
		airport("RIX", "Riga", "Riga", "Latvia", 56.9236, 23.9711),
		airport("TLL", "Tallinn", "Tallinn", "Estonia", 59.4133, 24.8328),
		airport("VNO", "Vilnius", "Vilnius", "Lithuania", 54.6341, 25.2858),
		airport("SOF", "Sofia", "Sofia", "Bulgaria", 42.6954, 23.4062),
		airport("OTP", "Henri Coandă", "Bucharest", "Romania", 44.5711, 26.0850),
		airport("BEG", "Nikola Tesla", "Belgrade", "Serbia", 44.8184, 20.3091),
		airport("ZAG", "Zagreb", "Zagreb", "Croatia", 45.7429, 16.0688),
		airport("LJU", "Jože Pučnik", "Ljubljana", "Slovenia", 46.2237, 14.4576),
		airport("SKP", "Skopje", "Skopje", "North Macedonia", 41.9614, 21.6214),
		airport("TIA", "Tirana", "Tirana", "Albania", 41.4147, 19.7206),
		airport("KBP", "Boryspil", "Kiev", "Ukraine", 50.3450, 30.8947),
		airport("MSQ", "Minsk", "Minsk", "Belarus", 53.8825, 28.0307),
		airport("LED", "Pulkovo", "Saint Petersburg", "Russia", 59.8003, 30.2625),
		airport("SVO", "Sheremetyevo", "Moscow", "Russia", 55.9726, 37.4146),
	}
}
