//go:build ignore

// Generates methods_gen.go: one copy of every benchmark method per built-in
// provider and per sink type, written against the concrete types so each
// call in a timed body has a fixed target.
//
// Run with: go generate ./benchmark
package main

import (
	"bytes"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

type call struct {
	Var  string
	Args []string
}

type method struct {
	Name  string // case method name
	Func  string // Provider method
	Calls []call
}

type impl struct {
	Kind string // provider.Kind constant
	Type string // provider type
}

type sink struct {
	Suffix string
	Type   string
}

var methods = []method{
	{"acos", "Acos", []call{{"ww", []string{"W"}}, {"xx", []string{"X"}}, {"yy", []string{"Y"}}}},
	{"atan", "Atan", unary4},
	{"cos", "Cos", unary4},
	{"exp", "Exp", unary4},
	{"pow", "Pow", []call{{"xw", []string{"X", "W"}}, {"yx", []string{"Y", "X"}}, {"zy", []string{"Z", "Y"}}}},
	{"sin", "Sin", unary4},
	{"sqrt", "Sqrt", []call{{"xx", []string{"X"}}, {"yy", []string{"Y"}}, {"zz", []string{"Z"}}}},
}

var unary4 = []call{{"ww", []string{"W"}}, {"xx", []string{"X"}}, {"yy", []string{"Y"}}, {"zz", []string{"Z"}}}

var impls = []impl{
	{"KindStd", "Std"},
	{"KindClamped", "Clamped"},
	{"KindMath32", "Math32"},
}

var sinks = []sink{
	{"", "Blackhole"},
	{"Checked", "CheckingSink"},
}

var funcs = template.FuncMap{
	"args": func(fields []string) string {
		out := make([]string, len(fields))
		for i, f := range fields {
			out[i] = "data." + f
		}
		return strings.Join(out, ", ")
	},
}

const source = `// Code generated by gen_methods.go; DO NOT EDIT.

package benchmark

import (
	"github.com/dshills/ubench/core"
	"github.com/dshills/ubench/physics"
	"github.com/dshills/ubench/provider"
)

// timedBodies maps each built-in provider and method to its generated bodies
var timedBodies = map[provider.Kind]map[string]body{
{{- range $p := .Impls}}
	provider.{{$p.Kind}}: {
	{{- range $m := $.Methods}}
		"{{$m.Name}}": {run: {{$m.Name}}{{$p.Type}}, verify: {{$m.Name}}{{$p.Type}}Checked},
	{{- end}}
	},
{{- end}}
}
{{range $p := .Impls}}{{range $m := $.Methods}}{{range $s := $.Sinks}}
func {{$m.Name}}{{$p.Type}}{{$s.Suffix}}(hole *core.{{$s.Type}}, data *core.Fixture) {
	var p provider.{{$p.Type}}
{{- range $c := $m.Calls}}
	{{$c.Var}} := p.{{$m.Func}}({{args $c.Args}})
	hole.Consume({{$c.Var}})
{{- end}}
}
{{end}}{{end}}{{end}}
{{- range $s := .Sinks}}
func quat{{$s.Suffix}}(box *physics.Body, hole *core.{{$s.Type}}) {
	q := box.Rotation()
	ww := q.W
	hole.Consume(ww)
	xx := q.X()
	hole.Consume(xx)
	yy := q.Y()
	hole.Consume(yy)
	zz := q.Z()
	hole.Consume(zz)
}

func quatByID{{$s.Suffix}}(bi *physics.BodyInterface, id physics.BodyID, hole *core.{{$s.Type}}) {
	q := bi.GetRotation(id)
	ww := q.W
	hole.Consume(ww)
	xx := q.X()
	hole.Consume(xx)
	yy := q.Y()
	hole.Consume(yy)
	zz := q.Z()
	hole.Consume(zz)
}
{{end}}`

func main() {
	tmpl := template.Must(template.New("methods").Funcs(funcs).Parse(source))

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, map[string]any{
		"Methods": methods,
		"Impls":   impls,
		"Sinks":   sinks,
	})
	if err != nil {
		log.Fatalf("failed to render methods: %v", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("failed to format methods: %v", err)
	}
	if err := os.WriteFile("methods_gen.go", src, 0o644); err != nil {
		log.Fatalf("failed to write methods_gen.go: %v", err)
	}
}
