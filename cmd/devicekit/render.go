package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/dmitrymomot/devicekit"
	"github.com/dmitrymomot/devicekit/pkg/useragent"
)

const unavailable = "-"

type jsonOutput struct {
	devicekit.Report
	UserAgent string `json:"user_agent,omitempty"`
}

func renderJSON(w io.Writer, kit *devicekit.Kit, r devicekit.Report) error {
	out := jsonOutput{Report: r}
	out.UserAgent, _ = useragent.Format(kit)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func renderProfiles(w io.Writer, names []string) error {
	t := newTable(w)
	t.AppendHeader(table.Row{"Device profiles"})
	for _, n := range names {
		t.AppendRow(table.Row{n})
	}
	t.Render()
	return nil
}

func renderTable(w io.Writer, kit *devicekit.Kit, r devicekit.Report) error {
	t := newTable(w)
	t.AppendHeader(table.Row{"Group", "Fact", "Value"})

	if r.System != nil {
		t.AppendRow(table.Row{"system", "version", r.System.Version})
	} else {
		t.AppendRow(table.Row{"system", "version", unavailable})
	}
	t.AppendSeparator()

	if r.UI != nil {
		t.AppendRows([]table.Row{
			{"ui", "idiom ipad", yesNo(r.UI.IsIdiomIPad)},
			{"ui", "idiom iphone", yesNo(r.UI.IsIdiomIPhone)},
			{"ui", "flat mode", yesNo(r.UI.IsFlatMode)},
		})
	} else {
		t.AppendRow(table.Row{"ui", "idiom", unavailable})
	}
	t.AppendSeparator()

	s := r.Screen
	t.AppendRows([]table.Row{
		{"screen", "scale", strconv.FormatFloat(s.Scale, 'f', -1, 64)},
		{"screen", "size", fmt.Sprintf("%gx%g pt", s.Size.Width, s.Size.Height)},
		{"screen", "resolution", fmt.Sprintf("%gx%g px", s.Resolution.Width, s.Resolution.Height)},
		{"screen", "retina", yesNo(s.IsRetina)},
		{"screen", "retina hd", yesNo(s.IsRetinaHD)},
		{"screen", "size class", s.SizeClass},
	})
	t.AppendSeparator()

	if r.App != nil {
		t.AppendRows([]table.Row{
			{"app", "name", r.App.Name},
			{"app", "bundle id", r.App.BundleID},
			{"app", "version", r.App.Version},
		})
	} else {
		t.AppendRow(table.Row{"app", "version", unavailable})
	}
	t.AppendSeparator()

	hw := r.Hardware
	t.AppendRows([]table.Row{
		{"hardware", "model id", hw.ModelID},
		{"hardware", "model", hw.ModelName},
		{"hardware", "ipod touch", yesNo(hw.IsIPodTouch)},
		{"hardware", "iphone", yesNo(hw.IsIPhone)},
		{"hardware", "ipad", yesNo(hw.IsIPad)},
		{"hardware", "ipad mini", yesNo(hw.IsIPadMini)},
		{"hardware", "simulator", yesNo(hw.IsSimulator)},
	})
	t.AppendSeparator()

	t.AppendRows([]table.Row{
		{"build", "deployment target", targetString(r.DeploymentTarget)},
		{"build", "base sdk", targetString(r.BaseSDK)},
	})

	if ua, err := useragent.Format(kit); err == nil {
		t.AppendSeparator()
		t.AppendRow(table.Row{"http", "user agent", ua})
	}

	t.Render()
	return nil
}

// newTable renders headers as written; the default style upper-cases them.
func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	return t
}

func targetString(t *devicekit.Target) string {
	if t == nil {
		return unavailable
	}
	return t.Version.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
