package sh

import (
	"encoding/json"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/robotalks/roboticscape.go/pkg/binding"
)

// MethodInfo describes a method for listing.
type MethodInfo struct {
	Name    string `json:"name"`
	Usage   string `json:"usage"`
	Doc     string `json:"doc,omitempty"`
	PreInit bool   `json:"pre_init,omitempty"`
}

var negative = color.New(color.FgRed)

// LocalMethods lists the methods of the binding.
func LocalMethods() []MethodInfo {
	all := binding.Methods()
	methods := make([]MethodInfo, len(all))
	for n := range all {
		meth := &all[n]
		methods[n] = MethodInfo{Name: meth.Name, Usage: meth.Usage(), Doc: meth.Doc, PreInit: meth.PreInit}
	}
	return methods
}

// FilterMethods keeps methods with name prefix, case insensitive. The "rc"
// prefix of names is optional.
func FilterMethods(methods []MethodInfo, prefix string) []MethodInfo {
	prefix = strings.ToLower(prefix)
	var res []MethodInfo
	for _, meth := range methods {
		name := strings.ToLower(meth.Name)
		if strings.HasPrefix(name, prefix) || strings.HasPrefix(name, "rc"+prefix) {
			res = append(res, meth)
		}
	}
	return res
}

// RenderMethods renders methods as a table.
func RenderMethods(methods []MethodInfo) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Usage", "Pre-Init", "Description"})
	for _, meth := range methods {
		var preInit string
		if meth.PreInit {
			preInit = "yes"
		}
		t.AppendRow(table.Row{meth.Usage, preInit, meth.Doc})
	}
	return t.Render()
}

// FormatValue formats a result for display. Negative integers are usually
// failure status codes and are highlighted.
func FormatValue(v binding.Value, asJSON bool) (string, error) {
	if asJSON {
		out, err := json.Marshal(v)
		return string(out), err
	}
	if v.Kind == binding.KindInt && v.Int < 0 {
		return negative.Sprint(v.String()), nil
	}
	return v.String(), nil
}
