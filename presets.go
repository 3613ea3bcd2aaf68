package converter

// Preset a named shortcut that sets both currencies at once.
// The Custom preset carries no pair and leaves selections untouched.
type Preset struct {
	Label  string
	Base   Currency
	Target Currency
}

// CustomPreset the label of the no-op preset
const CustomPreset = "Custom"

// Default selections for a fresh session.
const (
	DefaultBase   Currency = "GBP"
	DefaultTarget Currency = "USD"
)

// Presets the fixed list of quick preset pairs, in display order
var Presets = []Preset{
	{Label: CustomPreset},
	{Label: "GBP → USD (default)", Base: "GBP", Target: "USD"},
	{Label: "USD → GBP", Base: "USD", Target: "GBP"},
	{Label: "EUR → GBP", Base: "EUR", Target: "GBP"},
	{Label: "GBP → INR", Base: "GBP", Target: "INR"},
	{Label: "EUR → USD", Base: "EUR", Target: "USD"},
}

// DefaultPresetLabel the preset selected before the user picks one
var DefaultPresetLabel = Presets[1].Label

// PresetByLabel looks a preset up by its display label
func PresetByLabel(label string) (Preset, bool) {
	for _, preset := range Presets {
		if preset.Label == label {
			return preset, true
		}
	}
	return Preset{}, false
}
