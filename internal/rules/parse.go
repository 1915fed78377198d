package rules

import (
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// Parse validates raw rule sections and converts recognized options to
// typed values. Every failing option is collected; the returned error is a
// RuleValidation error listing each "section.key" failure in its metadata.
func Parse(raw Raw) (Table, Diagnostics, error) {
	if raw == nil {
		return nil, nil, errors.InvalidTypef("rules must be a section mapping, got nil")
	}

	vb := errors.NewValidationBuilder()
	table := make(Table, len(raw))
	var diags Diagnostics

	for _, name := range sortedKeys(raw) {
		options := raw[name]
		section := &Section{}

		for _, key := range sortedKeys(options) {
			value := options[key]
			field := name + "." + key

			switch key {
			case KeyScaleStat:
				section.ScaleStat = splitStats(value)
			case KeyScaleMethod:
				method := Method(strings.TrimSpace(value))
				if !method.Valid() {
					vb.Fieldf(field, "must be one of: %s, got %q", methodList(), value)
					continue
				}
				section.ScaleMethod = method
			case KeyCap:
				c, err := strconv.Atoi(strings.TrimSpace(value))
				if err != nil {
					vb.Fieldf(field, "must be an integer, got %q", value)
					continue
				}
				section.Cap = &c
			case KeyScaleAmount:
				amount, err := ParseAmount(value)
				if err != nil {
					vb.Fieldf(field, "must be numeric, got %q", value)
					continue
				}
				section.ScaleAmount = &amount
			default:
				if section.Extra == nil {
					section.Extra = make(map[string]string)
				}
				section.Extra[key] = value
				diags = append(diags, Diagnostic{
					Section: name,
					Key:     key,
					Message: "unrecognized rule option, kept as raw string",
				})
			}
		}

		table[name] = section
	}

	if err := vb.BuildWithReason(errors.ReasonRuleValidation); err != nil {
		return nil, diags, err
	}

	return table, diags, nil
}

// ParseAmount parses a scale_amount value: a decimal point makes it a float,
// anything else must be an integer.
func ParseAmount(value string) (Amount, error) {
	value = strings.TrimSpace(value)
	if strings.Contains(value, ".") {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Amount{}, err
		}
		return FloatAmount(f), nil
	}

	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return Amount{}, err
	}
	return IntAmount(i), nil
}

// RequireKeys checks that every section of raw sets each of the given keys.
// The DEFAULT-inherited values count, since loaders merge them in.
func RequireKeys(raw Raw, keys ...string) error {
	vb := errors.NewValidationBuilder()
	for _, name := range sortedKeys(raw) {
		for _, key := range keys {
			if _, ok := raw[name][key]; !ok {
				vb.RequiredField(name + "." + key)
			}
		}
	}
	return vb.BuildWithReason(errors.ReasonRuleValidation)
}

func splitStats(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func methodList() string {
	names := make([]string, len(Methods))
	for i, m := range Methods {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
