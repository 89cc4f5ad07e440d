package ish

// Descriptions holds the code tables used to render decoded codes as text.
// A Decoder never modifies the maps it is given.
type Descriptions struct {
	ReportTypes map[string]string

	// Present weather occurrence (AU) components.
	Intensity     map[string]string
	Descriptor    map[string]string
	Precipitation map[string]string
	Obscuration   map[string]string
	OtherWeather  map[string]string

	// AutomatedWeather is the WMO 4680 table used by AW entries.
	AutomatedWeather map[string]string

	ExtremeTemperatureCodes map[string]string
}

// DefaultDescriptions returns the standard ISH code tables.
func DefaultDescriptions() Descriptions {
	return Descriptions{
		ReportTypes:             reportTypes,
		Intensity:               intensities,
		Descriptor:              descriptors,
		Precipitation:           precipitationTypes,
		Obscuration:             obscurations,
		OtherWeather:            otherWeather,
		AutomatedWeather:        automatedWeather,
		ExtremeTemperatureCodes: extremeTemperatureCodes,
	}
}

// unknownCondition is rendered for AW codes outside the table.
const unknownCondition = "UNKNOWN"

var reportTypes = map[string]string{
	"AERO":  "Aerological report",
	"AUST":  "Dataset from Australia",
	"AUTO":  "Report from an automatic station",
	"BOGUS": "Bogus report",
	"BRAZ":  "Dataset from Brazil",
	"COOPD": "US Cooperative Network summary of day report",
	"COOPS": "US Cooperative Network soil temperature report",
	"CRB":   "Climate Reference Book data from CDMP",
	"CRN05": "Climate Reference Network report, with 5-minute reporting interval",
	"CRN15": "Climate Reference Network report, with 15-minute reporting interval",
	"FM-12": "SYNOP Report of surface observation from a fixed land station",
	"FM-13": "SHIP Report of surface observation from a sea station",
	"FM-14": "SYNOP MOBIL Report of surface observation from a mobile land station",
	"FM-15": "METAR Aviation routine weather report",
	"FM-16": "SPECI Aviation selected special weather report",
	"FM-18": "BUOY Report of a buoy observation",
	"GREEN": "Dataset from Greenland",
	"MESOH": "Hydrological observations from MESONET operated by a civilian or government agency",
	"MESOS": "MESONET operated by a civilian or government agency",
	"MESOW": "Snow observations from MESONET operated by a civilian or government agency",
	"MEXIC": "Dataset from Mexico",
	"NSRDB": "National Solar Radiation Data Base",
	"PCP15": "US 15-minute precipitation network report",
	"PCP60": "US 60-minute precipitation network report",
	"S-S-A": "Synoptic, airways, and auto merged report",
	"SA-AU": "Airways and auto merged report",
	"SAO":   "Airways report (includes record specials)",
	"SAOSP": "Airways special report (excludes record specials)",
	"SHEF":  "Standard Hydrologic Exchange Format",
	"SMARS": "Supplementary airways station report",
	"SOD":   "Summary of day report from U.S. ASOS or AWOS station",
	"SOM":   "Summary of month report from U.S. ASOS or AWOS station",
	"SURF":  "Surface Radiation Network report",
	"SY-AE": "Synoptic and aero merged report",
	"SY-AU": "Synoptic and auto merged report",
	"SY-MT": "Synoptic and METAR merged report",
	"SY-SA": "Synoptic and airways merged report",
	"WBO":   "Weather Bureau Office",
	"WNO":   "Washington Naval Observatory",
	"99999": "Missing",
}

var intensities = map[string]string{
	"1": "Light",
	"2": "Moderate",
	"3": "Heavy",
	"4": "Vicinity",
}

var descriptors = map[string]string{
	"1": "Shallow",
	"2": "Partial",
	"3": "Patches",
	"4": "Low Drifting",
	"5": "Blowing",
	"6": "Showers",
	"7": "Thunderstorm",
	"8": "Freezing",
}

var precipitationTypes = map[string]string{
	"01": "Drizzle",
	"02": "Rain",
	"03": "Snow",
	"04": "Snow Grains",
	"05": "Ice Crystals",
	"06": "Ice Pellets",
	"07": "Hail",
	"08": "Small Hail and/or Snow Pellets",
	"09": "Unknown Precipitation",
}

var obscurations = map[string]string{
	"1": "Mist",
	"2": "Fog",
	"3": "Smoke",
	"4": "Volcanic Ash",
	"5": "Widespread Dust",
	"6": "Sand",
	"7": "Haze",
	"8": "Spray",
}

var otherWeather = map[string]string{
	"1": "Well-Developed Dust/Sand Whirls",
	"2": "Squalls",
	"3": "Funnel Cloud, Tornado, Waterspout",
	"4": "Sandstorm",
	"5": "Duststorm",
}

var extremeTemperatureCodes = map[string]string{
	"N": "Minimum",
	"M": "Maximum",
	"O": "Estimated minimum",
	"P": "Estimated maximum",
}

var automatedWeather = map[string]string{
	"00": "No significant weather observed",
	"01": "Clouds generally dissolving or becoming less developed",
	"02": "State of sky on the whole unchanged during the past hour",
	"03": "Clouds generally forming or developing during the past hour",
	"04": "Haze, smoke, or dust in suspension in the air, visibility equal to or greater than 1km",
	"05": "Smoke",
	"07": "Dust or sand raised by wind at or near the station at the time of observation, but no other event",
	"10": "Mist",
	"11": "Diamond dust",
	"12": "Distant lightning",
	"18": "Squalls",
	"20": "Fog",
	"21": "Precipitation",
	"22": "Drizzle (not freezing) or snow grains",
	"23": "Rain (not freezing)",
	"24": "Snow",
	"25": "Freezing drizzle or freezing rain",
	"26": "Thunderstorm (with or without precipitation)",
	"27": "Blowing or drifting snow or sand",
	"28": "Blowing or drifting snow or sand, visibility equal to or greater than 1 km",
	"29": "Blowing or drifting snow or sand, visibility less than 1 km",
	"30": "Fog",
	"31": "Fog or ice fog in patches",
	"32": "Fog or ice fog, has become thinner during the past hour",
	"33": "Fog or ice fog, no appreciable change during the past hour",
	"34": "Fog or ice fog, has begun or become thicker during the past hour",
	"35": "Fog, depositing rime",
	"40": "Precipitation",
	"41": "Precipitation, slight or moderate",
	"42": "Precipitation, heavy",
	"43": "Liquid precipitation, slight or moderate",
	"44": "Liquid precipitation, heavy",
	"45": "Solid precipitation, slight or moderate",
	"46": "Solid precipitation, heavy",
	"47": "Freezing precipitation, slight or moderate",
	"48": "Freezing precipitation, heavy",
	"50": "Drizzle",
	"51": "Drizzle, not freezing, slight",
	"52": "Drizzle, not freezing, moderate",
	"53": "Drizzle, not freezing, heavy",
	"54": "Drizzle, freezing, slight",
	"55": "Drizzle, freezing, moderate",
	"56": "Drizzle, freezing, heavy",
	"57": "Drizzle and rain, slight",
	"58": "Drizzle and rain, moderate or heavy",
	"60": "Rain",
	"61": "Rain, not freezing, slight",
	"62": "Rain, not freezing, moderate",
	"63": "Rain, not freezing, heavy",
	"64": "Rain, freezing, slight",
	"65": "Rain, freezing, moderate",
	"66": "Rain, freezing, heavy",
	"67": "Rain or drizzle and snow, slight",
	"68": "Rain or drizzle and snow, moderate or heavy",
	"70": "Snow",
	"71": "Snow, slight",
	"72": "Snow, moderate",
	"73": "Snow, heavy",
	"74": "Ice pellets, slight",
	"75": "Ice pellets, moderate",
	"76": "Ice pellets, heavy",
	"77": "Snow grains",
	"78": "Ice crystals",
	"80": "Showers or intermittent precipitation",
	"81": "Rain showers or intermittent rain, slight",
	"82": "Rain showers or intermittent rain, moderate",
	"83": "Rain showers or intermittent rain, heavy",
	"84": "Rain showers or intermittent rain, violent",
	"85": "Snow showers or intermittent snow, slight",
	"86": "Snow showers or intermittent snow, moderate",
	"87": "Snow showers or intermittent snow, heavy",
	"89": "Hail",
	"90": "Thunderstorm",
	"91": "Thunderstorm, slight or moderate, with no precipitation",
	"92": "Thunderstorm, slight or moderate, with rain showers and/or snow showers",
	"93": "Thunderstorm, slight or moderate, with hail",
	"94": "Thunderstorm, heavy, with no precipitation",
	"95": "Thunderstorm, heavy, with rain showers and/or snow",
	"96": "Thunderstorm, heavy, with hail",
	"99": "Tornado",
}
