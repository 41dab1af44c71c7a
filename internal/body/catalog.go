package body

// SolarSystem returns the built-in catalog: the Sun, the eight planets,
// Pluto, and the major moons, with J2000 orbital elements. Semi-major axes
// are kilometers, angles degrees, periods days, masses kilograms.
func SolarSystem() []Data {
	return []Data{
		{
			ID:     "sun",
			Name:   "Sun",
			Type:   Star,
			Radius: 695700.0,
			Mass:   1.989e30,
		},

		// Planets
		{
			ID:                 "mercury",
			Name:               "Mercury",
			Type:               Planet,
			Parent:             "sun",
			Radius:             2439.7,
			Mass:               3.3011e23,
			Eccentricity:       0.20563,
			SemimajorAxis:      57909050,
			Inclination:        7.005,
			LongAscNode:        48.331,
			ArgPeriapsis:       29.124,
			InitialMeanAnomaly: 174.796,
			RevolutionPeriod:   87.969,
		},
		{
			ID:                 "venus",
			Name:               "Venus",
			Type:               Planet,
			Parent:             "sun",
			Radius:             6051.8,
			Mass:               4.8675e24,
			Eccentricity:       0.006772,
			SemimajorAxis:      108208000,
			Inclination:        3.39458,
			LongAscNode:        76.680,
			ArgPeriapsis:       54.884,
			InitialMeanAnomaly: 50.115,
			RevolutionPeriod:   224.701,
		},
		{
			ID:                 "earth",
			Name:               "Earth",
			Type:               Planet,
			Parent:             "sun",
			Radius:             6371.0,
			Mass:               5.97237e24,
			Eccentricity:       0.0167086,
			SemimajorAxis:      149598023,
			Inclination:        0.00005,
			LongAscNode:        -11.26064,
			ArgPeriapsis:       114.20783,
			InitialMeanAnomaly: 358.617,
			RevolutionPeriod:   365.256,
		},
		{
			ID:                 "mars",
			Name:               "Mars",
			Type:               Planet,
			Parent:             "sun",
			Radius:             3389.5,
			Mass:               6.4171e23,
			Eccentricity:       0.0934,
			SemimajorAxis:      227939366,
			Inclination:        1.850,
			LongAscNode:        49.578,
			ArgPeriapsis:       286.5,
			InitialMeanAnomaly: 19.412,
			RevolutionPeriod:   686.980,
		},
		{
			ID:                 "jupiter",
			Name:               "Jupiter",
			Type:               Planet,
			Parent:             "sun",
			Radius:             69911,
			Mass:               1.8982e27,
			Eccentricity:       0.0489,
			SemimajorAxis:      778479000,
			Inclination:        1.303,
			LongAscNode:        100.464,
			ArgPeriapsis:       273.867,
			InitialMeanAnomaly: 20.020,
			RevolutionPeriod:   4332.59,
		},
		{
			ID:                 "saturn",
			Name:               "Saturn",
			Type:               Planet,
			Parent:             "sun",
			Radius:             58232,
			Mass:               5.6834e26,
			Eccentricity:       0.0565,
			SemimajorAxis:      1433530000,
			Inclination:        2.485,
			LongAscNode:        113.665,
			ArgPeriapsis:       339.392,
			InitialMeanAnomaly: 317.020,
			RevolutionPeriod:   10759.22,
		},
		{
			ID:                 "uranus",
			Name:               "Uranus",
			Type:               Planet,
			Parent:             "sun",
			Radius:             25362,
			Mass:               8.6810e25,
			Eccentricity:       0.04717,
			SemimajorAxis:      2870972000,
			Inclination:        0.773,
			LongAscNode:        74.006,
			ArgPeriapsis:       96.998,
			InitialMeanAnomaly: 142.239,
			RevolutionPeriod:   30688.5,
		},
		{
			ID:                 "neptune",
			Name:               "Neptune",
			Type:               Planet,
			Parent:             "sun",
			Radius:             24622,
			Mass:               1.02413e26,
			Eccentricity:       0.008678,
			SemimajorAxis:      4500000000,
			Inclination:        1.767975,
			LongAscNode:        131.784,
			ArgPeriapsis:       273.187,
			InitialMeanAnomaly: 256.228,
			RevolutionPeriod:   60182,
		},

		// Dwarf planets
		{
			ID:                 "pluto",
			Name:               "Pluto",
			Type:               DwarfPlanet,
			Parent:             "sun",
			Radius:             1188.3,
			Mass:               1.303e22,
			Eccentricity:       0.2488,
			SemimajorAxis:      5906380000,
			Inclination:        17.16,
			LongAscNode:        110.299,
			ArgPeriapsis:       113.834,
			InitialMeanAnomaly: 14.53,
			RevolutionPeriod:   90560,
		},

		// Moons
		{
			ID:                 "moon",
			Name:               "Moon",
			Type:               Moon,
			Parent:             "earth",
			Radius:             1737.4,
			Mass:               7.342e22,
			Eccentricity:       0.0549,
			SemimajorAxis:      384399,
			Inclination:        5.145,
			LongAscNode:        125.08,
			ArgPeriapsis:       318.15,
			InitialMeanAnomaly: 135.27,
			RevolutionPeriod:   27.321661,
		},
		{
			ID:                 "phobos",
			Name:               "Phobos",
			Type:               Moon,
			Parent:             "mars",
			Radius:             11.08,
			Mass:               1.0659e16,
			Eccentricity:       0.0151,
			SemimajorAxis:      9376,
			Inclination:        1.093,
			InitialMeanAnomaly: 92.474,
			RevolutionPeriod:   0.31891,
		},
		{
			ID:                 "deimos",
			Name:               "Deimos",
			Type:               Moon,
			Parent:             "mars",
			Radius:             6.27,
			Mass:               1.4762e15,
			Eccentricity:       0.00033,
			SemimajorAxis:      23463.2,
			Inclination:        0.93,
			InitialMeanAnomaly: 296.23,
			RevolutionPeriod:   1.263,
		},
		{
			ID:                 "io",
			Name:               "Io",
			Type:               Moon,
			Parent:             "jupiter",
			Radius:             1821.6,
			Mass:               8.9319e22,
			Eccentricity:       0.0041,
			SemimajorAxis:      421700,
			Inclination:        0.05,
			InitialMeanAnomaly: 342.021,
			RevolutionPeriod:   1.769138,
		},
		{
			ID:                 "europa",
			Name:               "Europa",
			Type:               Moon,
			Parent:             "jupiter",
			Radius:             1560.8,
			Mass:               4.7998e22,
			Eccentricity:       0.009,
			SemimajorAxis:      670900,
			Inclination:        0.47,
			InitialMeanAnomaly: 171.016,
			RevolutionPeriod:   3.551181,
		},
		{
			ID:                 "ganymede",
			Name:               "Ganymede",
			Type:               Moon,
			Parent:             "jupiter",
			Radius:             2634.1,
			Mass:               1.4819e23,
			Eccentricity:       0.0013,
			SemimajorAxis:      1070400,
			Inclination:        0.2,
			InitialMeanAnomaly: 317.54,
			RevolutionPeriod:   7.154553,
		},
		{
			ID:                 "callisto",
			Name:               "Callisto",
			Type:               Moon,
			Parent:             "jupiter",
			Radius:             2410.3,
			Mass:               1.0759e23,
			Eccentricity:       0.0074,
			SemimajorAxis:      1882700,
			Inclination:        0.192,
			InitialMeanAnomaly: 181.408,
			RevolutionPeriod:   16.689018,
		},
		{
			ID:                 "titan",
			Name:               "Titan",
			Type:               Moon,
			Parent:             "saturn",
			Radius:             2574.7,
			Mass:               1.3452e23,
			Eccentricity:       0.0288,
			SemimajorAxis:      1221870,
			Inclination:        0.34854,
			InitialMeanAnomaly: 15.154,
			RevolutionPeriod:   15.945,
		},
		{
			ID:                 "triton",
			Name:               "Triton",
			Type:               Moon,
			Parent:             "neptune",
			Radius:             1353.4,
			Mass:               2.139e22,
			Eccentricity:       0.000016,
			SemimajorAxis:      354759,
			Inclination:        156.885,
			InitialMeanAnomaly: 264.775,
			RevolutionPeriod:   5.876854,
		},
	}
}
