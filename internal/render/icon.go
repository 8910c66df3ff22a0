package render

import "github.com/openmatrix/ledweather/internal/weather"

// Icon identifies a tile in the weather icon sheet.
type Icon string

const (
	IconClearDay          Icon = "clear-day"
	IconClearNight        Icon = "clear-night"
	IconPartlyCloudyDay   Icon = "partly-cloudy-day"
	IconPartlyCloudyNight Icon = "partly-cloudy-night"
	IconCloudy            Icon = "cloudy"
	IconRain              Icon = "rain"
	IconSnow              Icon = "snow"
	IconThunderstorm      Icon = "thunderstorm"
	IconMist              Icon = "mist"
	IconUnknown           Icon = "unknown"
)

// IconFor maps a condition and day/night flag to an icon. Only clear and
// partly-cloudy have night variants; everything else ignores the flag.
// Unrecognized conditions map to IconUnknown rather than failing.
func IconFor(cond weather.Condition, night bool) Icon {
	switch cond {
	case weather.ConditionClear:
		if night {
			return IconClearNight
		}
		return IconClearDay
	case weather.ConditionPartlyCloudy:
		if night {
			return IconPartlyCloudyNight
		}
		return IconPartlyCloudyDay
	case weather.ConditionCloudy:
		return IconCloudy
	case weather.ConditionRain:
		return IconRain
	case weather.ConditionSnow:
		return IconSnow
	case weather.ConditionStorm:
		return IconThunderstorm
	case weather.ConditionMist:
		return IconMist
	default:
		return IconUnknown
	}
}
