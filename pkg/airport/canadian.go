// pkg/airport/canadian.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airport

// CanadianCoordinates is a reference coordinate table for Canadian
// airports, suitable for NewStaticTable. It is sample data, not a
// constant the analytical core depends on directly — callers wire their
// own table (or this one) in through the Lookup interface.
var CanadianCoordinates = map[string][2]float64{
	// Major hubs
	"CYYZ": {43.6777, -79.6248},  // Toronto Pearson
	"CYVR": {49.1947, -123.1839}, // Vancouver
	"CYUL": {45.4706, -73.7408},  // Montreal Trudeau
	"CYOW": {45.3225, -75.6692},  // Ottawa
	"CYYC": {51.1225, -114.0139}, // Calgary
	"CYEG": {53.3097, -113.5797}, // Edmonton
	"CYWG": {49.9100, -97.2399},  // Winnipeg
	"CYQB": {46.7911, -71.3933},  // Quebec City
	"CYHZ": {44.8808, -63.5086},  // Halifax
	"CYXE": {52.1708, -106.6997}, // Saskatoon
	"CYQR": {50.4319, -104.6656}, // Regina
	"CYYJ": {48.6469, -123.4258}, // Victoria
	"CYYT": {47.6186, -52.7519},  // St. John's
	"CYQM": {46.1122, -64.6786},  // Moncton
	"CYFC": {45.8689, -66.5372},  // Fredericton
	"CYSJ": {45.3161, -65.8903},  // Saint John
	"CYQI": {43.8269, -66.0881},  // Yarmouth
	"CYDF": {49.2108, -57.3914},  // Deer Lake
	"CYQX": {48.9369, -54.5681},  // Gander
	"CYXY": {60.7096, -135.0674}, // Whitehorse
	"CYZF": {62.4628, -114.4403}, // Yellowknife
	"CYFB": {63.7561, -68.5558},  // Iqaluit

	// Secondary airports
	"CYTZ": {43.6275, -79.3962},  // Toronto Billy Bishop
	"CYOO": {43.9228, -78.8950},  // Oshawa
	"CYKF": {43.4608, -80.3786},  // Waterloo
	"CYXU": {43.0356, -81.1539},  // London
	"CYHM": {43.1736, -79.9350},  // Hamilton
	"CYAM": {46.4853, -84.5094},  // Sault Ste. Marie
	"CYQA": {44.9747, -79.3033},  // Muskoka
	"CYTS": {48.5697, -81.3767},  // Timmins
	"CYVO": {48.0533, -77.7828},  // Val-d'Or
	"CYMX": {45.6795, -74.0387},  // Montreal Mirabel
	"CYHU": {45.5175, -73.4169},  // Montreal St-Hubert
	"CYQY": {46.1614, -60.0478},  // Sydney
	"CYPR": {54.2861, -130.4447}, // Prince Rupert
	"CYXS": {53.8894, -122.6789}, // Prince George
	"CYKA": {50.7022, -120.4444}, // Kamloops
	"CYLW": {49.9561, -119.3778}, // Kelowna
	"CYCD": {49.0522, -123.8700}, // Nanaimo
	"CYXX": {49.0253, -122.3608}, // Abbotsford
	"CYBL": {49.9508, -125.2708}, // Campbell River
	"CYXC": {49.6108, -115.7822}, // Cranbrook
	"CYYF": {49.4631, -119.6022}, // Penticton
	"CYQQ": {49.7108, -124.8867}, // Comox
	"CYZT": {50.6806, -127.3667}, // Port Hardy
}
