package tmpl

import "github.com/yuna/weekcard/internal/schema"

// builtins are the template families that ship with the binary. Theme ids
// map to render styles; the first theme of each set is the default.
func builtins() []Template {
	return []Template{
		{
			ID:           "stream-week",
			Name:         "Stream Week",
			DefaultTheme: "mint",
			Themes:       []string{"mint", "plum", "peach", "mono"},
			Schema: schema.Schema{
				Fields: []schema.Field{
					{Key: "time", Kind: schema.KindTime, DefaultValue: "20:00", Placeholder: "start time"},
					{Key: "topic", Kind: schema.KindText, MaxLength: 40, Placeholder: "what are you streaming?"},
					{Key: "memo", Kind: schema.KindTextarea, Placeholder: "notes", OfflineOnly: true},
				},
				Toggles: schema.Toggles{ShowProfile: true, ShowWeekBar: true},
			},
		},
		{
			ID:           "game-night",
			Name:         "Game Night",
			DefaultTheme: "plum",
			Themes:       []string{"plum", "mint", "mono"},
			Schema: schema.Schema{
				Fields: []schema.Field{
					{Key: "time", Kind: schema.KindTime},
					{Key: "game", Kind: schema.KindText, MaxLength: 32, Required: true},
					{Key: "platform", Kind: schema.KindSelect, Options: []string{"twitch", "youtube", "chzzk"}, DefaultValue: "twitch"},
					{Key: "hours", Kind: schema.KindNumber, DefaultValue: 2},
				},
				Toggles: schema.Toggles{ShowWeekBar: true},
			},
		},
		{
			ID:           "cafe-menu",
			Name:         "Cafe Menu Week",
			DefaultTheme: "peach",
			Themes:       []string{"peach", "mono"},
			Schema: schema.Schema{
				MultiEntry: true,
				Fields: []schema.Field{
					{Key: "item", Kind: schema.KindText, MaxLength: 24, Required: true},
					{Key: "price", Kind: schema.KindNumber},
					{Key: "soldout_note", Kind: schema.KindText, OfflineOnly: true},
				},
				Toggles: schema.Toggles{ShowProfile: true},
			},
		},
	}
}
