package compose

import (
	"wallpaper/internal/scene"
	"wallpaper/internal/theme"
)

const (
	iconViewBox   = 24
	iconLineWidth = 1.75
	mosqueBase    = 512
)

var iconSymbols = []scene.Symbol{
	{
		ID:      "icon-sehri",
		ViewBox: iconViewBox,
		Paths: []string{
			"M3 16.5h18",
			"M5.4 16.5a6.6 6.6 0 0 1 13.2 0",
			"M12 6.4v2.2",
			"M8.2 8.1l1.1 1.1",
			"M15.8 8.1l-1.1 1.1",
			"M4.4 19.3h15.2",
		},
	},
	{
		ID:      "icon-fajr",
		ViewBox: iconViewBox,
		Paths: []string{
			"M12 3.5v4.2",
			"M8.1 7.5L12 3.5l3.9 4",
			"M7.5 20a4.5 4.5 0 0 1 9 0",
			"M5.4 11.2l1.4 1.4",
			"M18.6 11.2l-1.4 1.4",
			"M3 20h18",
		},
	},
	{
		ID:      "icon-zohar",
		ViewBox: iconViewBox,
		Circles: []scene.Circle{{CX: 12, CY: 12, R: 3.8}},
		Paths: []string{
			"M12 2.8v3",
			"M12 18.2v3",
			"M2.8 12h3",
			"M18.2 12h3",
			"M5.5 5.5l2.1 2.1",
			"M16.4 16.4l2.1 2.1",
			"M18.5 5.5l-2.1 2.1",
			"M7.6 16.4l-2.1 2.1",
		},
	},
	{
		ID:      "icon-asr",
		ViewBox: iconViewBox,
		Paths: []string{
			"M3 17.8h18",
			"M6 17.8a6 6 0 0 1 12 0",
			"M12 7v2.2",
			"M8.2 9l1.1 1.1",
			"M15.8 9l-1.1 1.1",
			"M5.2 12.2h2.2",
			"M16.6 12.2h2.2",
		},
	},
	{
		ID:      "icon-maghrib",
		ViewBox: iconViewBox,
		Paths: []string{
			"M12 10V2",
			"M5.2 11.2l1.4 1.4",
			"M2 18h2",
			"M20 18h2",
			"M17.4 12.6l1.4-1.4",
			"M22 22H2",
			"M16 6l-4 4-4-4",
			"M16 18a4 4 0 0 0 -8 0",
		},
	},
	{
		ID:      "icon-isha",
		ViewBox: iconViewBox,
		Paths: []string{
			"M16.2 4.4a7.4 7.4 0 1 0 0 15.2a6.5 6.5 0 0 1-4.5-7.6a6.5 6.5 0 0 1 4.5-7.6z",
			"M18.2 6.2l0.5 1.4l1.4 0.5l-1.4 0.5l-0.5 1.4l-0.5-1.4l-1.4-0.5l1.4-0.5z",
		},
	},
}

var mosquePaths = []string{
	"M503.467,494.933H8.533c-4.71,0-8.533,3.823-8.533,8.533S3.823,512,8.533,512h494.933c4.719,0,8.533-3.823,8.533-8.533 S508.186,494.933,503.467,494.933z",
	"M418.133,477.867c4.719,0,8.533-3.823,8.533-8.533v-307.2c0-4.71-3.814-8.533-8.533-8.533s-8.533,3.823-8.533,8.533 v162.133h-34.133v-8.533c0-4.71-3.814-8.533-8.533-8.533s-8.533,3.823-8.533,8.533V460.8h-34.133v-68.267 c0-37.641-30.626-68.267-68.267-68.267c-37.641,0-68.267,30.626-68.267,68.267V460.8H153.6V315.733 c0-4.71-3.823-8.533-8.533-8.533c-4.71,0-8.533,3.823-8.533,8.533v8.533H102.4V162.133c0-4.71-3.823-8.533-8.533-8.533 c-4.71,0-8.533,3.823-8.533,8.533v307.2c0,4.71,3.823,8.533,8.533,8.533c4.71,0,8.533-3.823,8.533-8.533v-128h34.133V460.8H128 c-4.71,0-8.533,3.823-8.533,8.533s3.823,8.533,8.533,8.533h256c4.719,0,8.533-3.823,8.533-8.533S388.719,460.8,384,460.8h-8.533 V341.333H409.6v128C409.6,474.044,413.414,477.867,418.133,477.867z M247.467,409.6c-4.71,0-8.533,3.823-8.533,8.533 s3.823,8.533,8.533,8.533V460.8H204.8v-68.267c0-25.318,18.492-46.344,42.667-50.432V409.6z M307.2,460.8h-42.667v-34.133 c4.719,0,8.533-3.823,8.533-8.533s-3.814-8.533-8.533-8.533v-67.499c24.175,4.087,42.667,25.114,42.667,50.432V460.8z",
	"M443.733,196.267v17.067c0,4.71,3.814,8.533,8.533,8.533c4.719,0,8.533-3.823,8.533-8.533v-17.067 c0-4.71-3.814-8.533-8.533-8.533C447.548,187.733,443.733,191.556,443.733,196.267z",
	"M17.067,162.133v307.2c0,4.71,3.823,8.533,8.533,8.533c4.71,0,8.533-3.823,8.533-8.533v-307.2 c0-4.71-3.823-8.533-8.533-8.533C20.89,153.6,17.067,157.423,17.067,162.133z",
	"M418.133,136.533H486.4c3.234,0,6.187-1.826,7.629-4.719c15.172-30.336-8.107-59.273-23.501-78.421 c-4.565-5.666-8.866-11.017-10.624-14.541c-2.901-5.786-12.373-5.786-15.275,0c-1.758,3.524-6.067,8.875-10.624,14.541 c-15.394,19.149-38.673,48.085-23.509,78.421C411.947,134.707,414.899,136.533,418.133,136.533z M447.309,64.085 c1.741-2.167,3.413-4.241,4.958-6.229c1.545,1.988,3.217,4.062,4.958,6.229c13.09,16.282,29.15,36.233,23.415,55.381h-56.747 C418.159,100.318,434.219,80.367,447.309,64.085z",
	"M486.4,153.6c-4.719,0-8.533,3.823-8.533,8.533v307.2c0,4.71,3.814,8.533,8.533,8.533s8.533-3.823,8.533-8.533v-307.2 C494.933,157.423,491.119,153.6,486.4,153.6z",
	"M25.6,136.533h68.267c3.234,0,6.187-1.826,7.637-4.719c15.164-30.336-8.115-59.273-23.509-78.421 c-4.565-5.666-8.866-11.017-10.633-14.541c-2.884-5.786-12.373-5.786-15.266,0c-1.758,3.524-6.067,8.875-10.624,14.541 c-15.394,19.149-38.673,48.085-23.509,78.421C19.413,134.707,22.366,136.533,25.6,136.533z M54.775,64.085 c1.741-2.167,3.413-4.241,4.958-6.229c1.545,1.988,3.209,4.062,4.958,6.229c13.099,16.282,29.15,36.233,23.415,55.381H31.36 C25.626,100.318,41.677,80.367,54.775,64.085z",
	"M179.2,256c4.71,0,8.533-3.823,8.533-8.533V230.4c0-4.71-3.823-8.533-8.533-8.533s-8.533,3.823-8.533,8.533v17.067 C170.667,252.177,174.49,256,179.2,256z",
	"M51.2,196.267v17.067c0,4.71,3.823,8.533,8.533,8.533s8.533-3.823,8.533-8.533v-17.067c0-4.71-3.823-8.533-8.533-8.533 S51.2,191.556,51.2,196.267z",
	"M145.067,290.133h221.867c3.849,0,7.219-2.577,8.235-6.289c18.27-67.021-24.653-102.895-62.524-134.545 c-19.081-15.949-37.069-31.07-48.111-49.357V67.055c5.743-1.476,11.059-4.318,15.386-8.585c3.354-3.302,3.405-8.704,0.094-12.066 c-3.294-3.362-8.713-3.405-12.066-0.094c-3.208,3.149-7.45,4.89-11.947,4.89c-9.412,0-17.067-7.654-17.067-17.067 c0-9.412,7.654-17.067,17.067-17.067c4.71,0,8.533-3.823,8.533-8.533S260.71,0,256,0c-18.825,0-34.133,15.309-34.133,34.133 c0,15.855,10.923,29.107,25.6,32.922v32.887c-11.042,18.287-29.03,33.408-48.111,49.357 c-37.871,31.65-80.802,67.524-62.524,134.545C137.847,287.556,141.218,290.133,145.067,290.133z M210.304,162.389 c16.418-13.722,33.297-27.827,45.696-44.493c12.399,16.666,29.278,30.771,45.696,44.493 c35.831,29.943,69.743,58.283,58.539,110.677H151.765C140.561,220.672,174.473,192.333,210.304,162.389z",
	"M230.4,256c4.71,0,8.533-3.823,8.533-8.533V230.4c0-4.71-3.823-8.533-8.533-8.533s-8.533,3.823-8.533,8.533v17.067 C221.867,252.177,225.69,256,230.4,256z",
	"M281.6,256c4.719,0,8.533-3.823,8.533-8.533V230.4c0-4.71-3.814-8.533-8.533-8.533c-4.719,0-8.533,3.823-8.533,8.533 v17.067C273.067,252.177,276.881,256,281.6,256z",
	"M332.8,256c4.719,0,8.533-3.823,8.533-8.533V230.4c0-4.71-3.814-8.533-8.533-8.533c-4.719,0-8.533,3.823-8.533,8.533 v17.067C324.267,252.177,328.081,256,332.8,256z",
}

// mosqueSymbol bakes the theme's outline style into the silhouette.
func mosqueSymbol(t theme.Tokens) scene.Symbol {
	return scene.Symbol{
		ID:      "mosque-outline",
		ViewBox: mosqueBase,
		Paths:   mosquePaths,
		Stroke: &scene.Stroke{
			Color:    t.Mosque.Stroke,
			Width:    t.Mosque.Width,
			Linecap:  t.Mosque.Linecap,
			Linejoin: t.Mosque.Linejoin,
			Opacity:  t.Mosque.Opacity,
		},
	}
}

func iconStroke(t theme.Tokens) *scene.Stroke {
	return &scene.Stroke{Color: t.IconStroke, Width: iconLineWidth, Linecap: "round", Linejoin: "round"}
}
