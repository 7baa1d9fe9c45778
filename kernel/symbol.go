package kernel

// Symbol is a unit appended to a decoded value, e.g. "12.5 m³".
type Symbol uint8

const (
	// SymbolNone appends nothing.
	SymbolNone Symbol = iota
	SymbolPercent
	SymbolVolt
	SymbolMilliVolt
	SymbolMilliAmpere
	SymbolAmpere
	SymbolCubicMeter
	SymbolLiter
	SymbolMilliLiter
	SymbolCelsius
	SymbolMeterPerSecond
	SymbolMeterPerHour
	SymbolPascal
	SymbolKiloPascal
	SymbolCubicMeterPerHour
	SymbolCubicMeterPerSecond
	SymbolYuan
)

var symbolTags = [...]string{
	SymbolNone:                "",
	SymbolPercent:             "%",
	SymbolVolt:                "V",
	SymbolMilliVolt:           "mV",
	SymbolMilliAmpere:         "mA",
	SymbolAmpere:              "A",
	SymbolCubicMeter:          "m³",
	SymbolLiter:               "L",
	SymbolMilliLiter:          "mL",
	SymbolCelsius:             "℃",
	SymbolMeterPerSecond:      "m/s",
	SymbolMeterPerHour:        "m/h",
	SymbolPascal:              "Pa",
	SymbolKiloPascal:          "kPa",
	SymbolCubicMeterPerHour:   "m³/h",
	SymbolCubicMeterPerSecond: "m³/s",
	SymbolYuan:                "元",
}

// Tag returns the unit text of the symbol.
func (s Symbol) Tag() string {
	if int(s) < len(symbolTags) {
		return symbolTags[s]
	}

	return ""
}

// String implements fmt.Stringer.
func (s Symbol) String() string { return s.Tag() }
