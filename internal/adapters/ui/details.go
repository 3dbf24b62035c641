// Copyright 2025.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ui

import (
	"github.com/Adembc/netuse/internal/core/domain"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type ConnectionDetails struct {
	*tview.TextView
}

func NewConnectionDetails() *ConnectionDetails {
	details := &ConnectionDetails{
		TextView: tview.NewTextView(),
	}
	details.build()
	return details
}

func (cd *ConnectionDetails) build() {
	cd.TextView.SetDynamicColors(true).
		SetWrap(true).
		SetBorder(true).
		SetTitle("Details").
		SetBorderColor(tcell.Color238).
		SetTitleColor(tcell.Color250)
}

func (cd *ConnectionDetails) UpdateConnection(conn domain.Connection) {
	cd.TextView.SetText(formatDetails(conn))
}

func (cd *ConnectionDetails) ShowEmpty() {
	cd.TextView.SetText("No mapped drives match the current filter.")
}
