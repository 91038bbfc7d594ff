// Package booster serves the jokes and quotes offered while the selected
// mood is sad.
package booster

import (
	"fmt"
	"strings"
)

// Tab selects which content list is browsed.
type Tab int

const (
	Jokes Tab = iota
	Quotes
)

func (t Tab) String() string {
	switch t {
	case Quotes:
		return "quotes"
	default:
		return "jokes"
	}
}

// ParseTab maps "jokes"/"quotes" (and singular forms) to a Tab.
func ParseTab(s string) (Tab, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "joke", "jokes":
		return Jokes, nil
	case "quote", "quotes":
		return Quotes, nil
	}
	return Jokes, fmt.Errorf("unknown booster tab %q", s)
}

// Quote is an attributed inspirational quote.
type Quote struct {
	Text   string
	Author string
}

func (q Quote) String() string {
	return fmt.Sprintf("%q — %s", q.Text, q.Author)
}

var jokes = []string{
	"Why don't scientists trust atoms? Because they make up everything!",
	"What do you call a fake noodle? An impasta!",
	"Why did the scarecrow win an award? Because he was outstanding in his field!",
	"What do you call a bear with no teeth? A gummy bear!",
	"Why don't eggs tell jokes? They'd crack each other up!",
	"What did the ocean say to the beach? Nothing, it just waved!",
	"Why did the coffee file a police report? It got mugged!",
	"What do you call a dinosaur that is noisy? Dino-snore!",
	"Why is no one friends with Dracula? Because he's a pain in the neck!",
	"What did one wall say to the other? I'll meet you at the corner!",
	"Why did the math book look sad? Because it had too many problems!",
	"What do you call a sleeping bull? A dozer!",
	"Why did the cookie go to the hospital? Because it felt crumbly!",
	"What do you call a pig that does karate? A pork chop!",
	"Why did the student do multiplication in the garden? Because they wanted to grow their roots!",
}

var quotes = []Quote{
	{Text: "The greatest glory in living lies not in never falling, but in rising every time we fall.", Author: "Nelson Mandela"},
	{Text: "Your time is limited, do not waste it living someone else's life.", Author: "Steve Jobs"},
	{Text: "It is during our darkest moments that we must focus to see the light.", Author: "Aristotle"},
	{Text: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney"},
	{Text: "Do not let yesterday take up too much of today.", Author: "Will Rogers"},
	{Text: "You learn more from failure than from success.", Author: "Unknown"},
	{Text: "It is not whether you get knocked down, it is whether you get up.", Author: "Vince Lombardi"},
	{Text: "Life is what happens when you are busy making other plans.", Author: "John Lennon"},
	{Text: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt"},
	{Text: "It is never too late to be what you might have been.", Author: "George Eliot"},
}

// AllJokes returns every joke in order.
func AllJokes() []string {
	out := make([]string, len(jokes))
	copy(out, jokes)
	return out
}

// AllQuotes returns every quote in order.
func AllQuotes() []Quote {
	out := make([]Quote, len(quotes))
	copy(out, quotes)
	return out
}

// Len returns the number of items on a tab.
func Len(t Tab) int {
	if t == Quotes {
		return len(quotes)
	}
	return len(jokes)
}

// Item returns the i-th item of a tab, wrapping around.
func Item(t Tab, i int) string {
	n := Len(t)
	i = ((i % n) + n) % n
	if t == Quotes {
		return quotes[i].String()
	}
	return jokes[i]
}

// Booster tracks the browsing position of the panel. The zero value starts
// on the first joke.
type Booster struct {
	tab   Tab
	joke  int
	quote int
}

// New returns a booster positioned on the first joke.
func New() *Booster {
	return &Booster{}
}

func (b *Booster) Tab() Tab { return b.tab }

func (b *Booster) SetTab(t Tab) { b.tab = t }

// ToggleTab flips between jokes and quotes, keeping each tab's position.
func (b *Booster) ToggleTab() {
	if b.tab == Jokes {
		b.tab = Quotes
	} else {
		b.tab = Jokes
	}
}

// Next advances the active tab, wrapping to the first item.
func (b *Booster) Next() {
	if b.tab == Quotes {
		b.quote = (b.quote + 1) % len(quotes)
		return
	}
	b.joke = (b.joke + 1) % len(jokes)
}

// Index returns the zero based position on the active tab.
func (b *Booster) Index() int {
	if b.tab == Quotes {
		return b.quote
	}
	return b.joke
}

// Current returns the text under the cursor of the active tab.
func (b *Booster) Current() string {
	return Item(b.tab, b.Index())
}

// Position renders e.g. "Joke 3 of 15".
func (b *Booster) Position() string {
	noun := "Joke"
	if b.tab == Quotes {
		noun = "Quote"
	}
	return fmt.Sprintf("%s %d of %d", noun, b.Index()+1, Len(b.tab))
}

// NextLabel is the caption of the advance action.
func (b *Booster) NextLabel() string {
	if b.tab == Quotes {
		return "Next Quote"
	}
	return "Next Joke"
}
