// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"sync"

	"github.com/go-fonts/liberation/liberationserifbold"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

// boldTypeface names the bold Liberation Serif face. The PDF backend
// cannot draw the bold weight of the default typeface, so the bold
// face is registered as a typeface of its own at regular weight.
const boldTypeface font.Typeface = "LiberationBold"

var registerBold sync.Once

// BoldFont returns the bold variant of the default plot font at the
// given size, registering it with font.DefaultCache on first use.
func BoldFont(size vg.Length) font.Font {
	registerBold.Do(func() {
		face, err := opentype.Parse(liberationserifbold.TTF)
		if err != nil {
			panic(fmt.Errorf("chart: parsing bold font: %v", err))
		}
		font.DefaultCache.Add(font.Collection{{
			Font: font.Font{Typeface: boldTypeface, Variant: plot.DefaultFont.Variant},
			Face: face,
		}})
	})
	return font.Font{Typeface: boldTypeface, Variant: plot.DefaultFont.Variant, Size: size}
}
