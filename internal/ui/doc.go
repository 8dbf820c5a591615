// Package ui contains the Bubble Tea program that renders the menu page.
//
// The page is a viewport over a pre-rendered document. The first rows of the
// viewport are covered by a sticky nav overlay: a strip of section chips with
// paging arrows and a line naming the current section.
//
// Message flow:
//   - Bubble Tea invokes Model.Update, which routes each tea.Msg through a
//     typed handler registry (keys, mouse, resize, animation frames, timers
//     and command results).
//   - Scrolling the page polls the viewport observer. Sections that start
//     intersecting are fed to the nav dispatcher as visibility events.
//   - Jumps from the strip, the category picker or the keyboard are fed to
//     the same dispatcher. It returns effects (scroll the page, arm the
//     suppression timer, center the chip, pulse, close the picker) that the
//     model applies in order before the next message is handled.
//
// Time enters the model only through the Clock, so tests drive animations
// and the suppression window with a manual clock through the Harness.
package ui
