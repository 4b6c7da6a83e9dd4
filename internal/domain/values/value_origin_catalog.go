package values

import (
	"fmt"
	"strings"
)

// ValueOriginSource is the provenance category of a value (where it came from).
type ValueOriginSource struct {
	ID      int
	Name    string
	Display string
}

// IsUndefined reports whether this is the Undefined sentinel.
func (s ValueOriginSource) IsUndefined() bool {
	return s == SourceUndefined
}

// String returns the catalog name
func (s ValueOriginSource) String() string {
	return s.Name
}

// ValueOriginDeterminationMethod describes how a value was determined.
type ValueOriginDeterminationMethod struct {
	ID      int
	Name    string
	Display string
}

// IsUndefined reports whether this is the Undefined sentinel.
func (m ValueOriginDeterminationMethod) IsUndefined() bool {
	return m == MethodUndefined
}

// String returns the catalog name
func (m ValueOriginDeterminationMethod) String() string {
	return m.Name
}

// Value origin sources. Undefined carries an empty display so it never shows up
// in a joined caption.
var (
	SourceUndefined               = ValueOriginSource{ID: 0, Name: "Undefined"}
	SourceDatabase                = ValueOriginSource{ID: 1, Name: "Database", Display: "Database"}
	SourceInternet                = ValueOriginSource{ID: 2, Name: "Internet", Display: "Internet"}
	SourceParameterIdentification = ValueOriginSource{ID: 3, Name: "ParameterIdentification", Display: "Parameter Identification"}
	SourcePublication             = ValueOriginSource{ID: 4, Name: "Publication", Display: "Publication"}
	SourceOther                   = ValueOriginSource{ID: 5, Name: "Other", Display: "Other"}
	SourceUnknown                 = ValueOriginSource{ID: 6, Name: "Unknown", Display: "Unknown"}
)

// Value origin determination methods.
var (
	MethodUndefined               = ValueOriginDeterminationMethod{ID: 0, Name: "Undefined"}
	MethodAssumption              = ValueOriginDeterminationMethod{ID: 1, Name: "Assumption", Display: "Assumption"}
	MethodManualFit               = ValueOriginDeterminationMethod{ID: 2, Name: "ManualFit", Display: "Manual Fit"}
	MethodParameterIdentification = ValueOriginDeterminationMethod{ID: 3, Name: "ParameterIdentification", Display: "Parameter Identification"}
	MethodInVitro                 = ValueOriginDeterminationMethod{ID: 4, Name: "InVitro", Display: "In Vitro"}
	MethodInVivo                  = ValueOriginDeterminationMethod{ID: 5, Name: "InVivo", Display: "In Vivo"}
	MethodOther                   = ValueOriginDeterminationMethod{ID: 6, Name: "Other", Display: "Other"}
	MethodUnknown                 = ValueOriginDeterminationMethod{ID: 7, Name: "Unknown", Display: "Unknown"}
)

var allSources = []ValueOriginSource{
	SourceUndefined,
	SourceDatabase,
	SourceInternet,
	SourceParameterIdentification,
	SourcePublication,
	SourceOther,
	SourceUnknown,
}

var allMethods = []ValueOriginDeterminationMethod{
	MethodUndefined,
	MethodAssumption,
	MethodManualFit,
	MethodParameterIdentification,
	MethodInVitro,
	MethodInVivo,
	MethodOther,
	MethodUnknown,
}

// AllValueOriginSources returns the catalog of sources in ID order.
func AllValueOriginSources() []ValueOriginSource {
	out := make([]ValueOriginSource, len(allSources))
	copy(out, allSources)
	return out
}

// AllValueOriginDeterminationMethods returns the catalog of methods in ID order.
func AllValueOriginDeterminationMethods() []ValueOriginDeterminationMethod {
	out := make([]ValueOriginDeterminationMethod, len(allMethods))
	copy(out, allMethods)
	return out
}

// ParseValueOriginSource looks up a source by name (case-insensitive).
// An empty name yields SourceUndefined.
func ParseValueOriginSource(name string) (ValueOriginSource, error) {
	key := normalizeCatalogName(name)
	if key == "" {
		return SourceUndefined, nil
	}
	for _, s := range allSources {
		if normalizeCatalogName(s.Name) == key {
			return s, nil
		}
	}
	return ValueOriginSource{}, fmt.Errorf("invalid value origin source: %s", name)
}

// ParseValueOriginDeterminationMethod looks up a method by name (case-insensitive).
// An empty name yields MethodUndefined.
func ParseValueOriginDeterminationMethod(name string) (ValueOriginDeterminationMethod, error) {
	key := normalizeCatalogName(name)
	if key == "" {
		return MethodUndefined, nil
	}
	for _, m := range allMethods {
		if normalizeCatalogName(m.Name) == key {
			return m, nil
		}
	}
	return ValueOriginDeterminationMethod{}, fmt.Errorf("invalid value origin determination method: %s", name)
}

// normalizeCatalogName folds case and drops separators so "in-vitro", "In Vitro"
// and "InVitro" all match.
func normalizeCatalogName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(name)
}
