package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/npillmayer/rtlfix/batch"
	"github.com/npillmayer/rtlfix/script"
	"github.com/npillmayer/rtlfix/shaping"
	"github.com/pterm/pterm"
)

func printResults(results []batch.Result, cfg batch.Config) {
	if len(results) == 0 {
		pterm.Info.Printf("no %s files found\n", cfg.Extension)
		return
	}
	data := [][]string{
		{"File", "Status", "Leaves", "Changed", "Remark"},
	}
	for _, r := range results {
		remark := ""
		if r.Err != nil {
			remark = r.Err.Error()
		} else if cfg.DryRun {
			remark = "dry run"
		}
		data = append(data, []string{
			filepath.ToSlash(r.Path),
			r.Status.String(),
			fmt.Sprintf("%d", r.Leaves),
			fmt.Sprintf("%d", r.Changed),
			remark,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	s := batch.Summarize(results)
	msg := fmt.Sprintf("%d processed, %d skipped, %d failed; %d texts changed (mode %s)",
		s.Processed, s.Skipped, s.Failed, s.Changed, cfg.Mode)
	if s.Failed > 0 {
		pterm.Error.Println(msg)
	} else {
		pterm.Info.Println(msg)
	}
}

func printGaps(gaps *shaping.Gaps) {
	if gaps.Len() == 0 {
		pterm.Info.Println("no letters missing from the shaping table")
		return
	}
	data := [][]string{
		{"Letter", "Count"},
	}
	gaps.Each(func(r rune, count int) {
		data = append(data, []string{shaping.Describe(r), fmt.Sprintf("%d", count)})
	})
	pterm.Info.Println("Letters missing from the shaping table")
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printCodePoints(s string) {
	pterm.Printf("%U\n", []rune(s))
}

var forms = []shaping.Form{
	shaping.FormIsolated,
	shaping.FormFinal,
	shaping.FormInitial,
	shaping.FormMedial,
	shaping.FormLigatureIsolated,
	shaping.FormLigatureFinal,
}

func printLetters(letters string) {
	pterm.DefaultTable.WithHasHeader().WithData(letterRows(letters)).Render()
}

// letterRows returns a header row and one row per letter.
func letterRows(letters string) [][]string {
	data := [][]string{
		{"Letter", "Script", "Bidi", "Strong RTL", "Class", "isol", "fina", "init", "medi", "liga/isol", "liga/fina"},
	}
	for _, r := range letters {
		class, _ := shaping.Classify(r)
		row := []string{
			shaping.Describe(r),
			script.Of(r).String(),
			script.ClassString(script.BidiClass(r)),
			strconv.FormatBool(script.IsStrongRTL(r)),
			class.String(),
		}
		for _, f := range forms {
			if p, ok := shaping.Presentation(r, f); ok {
				row = append(row, fmt.Sprintf("%c %U", p, p))
			} else {
				row = append(row, "-")
			}
		}
		data = append(data, row)
	}
	return data
}
