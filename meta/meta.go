// meta/meta.go
package meta

// ROWS is the default board height.
const ROWS = 5

// COLS is the default board width.
const COLS = 7

// HAND_SIZE is the default number of cards each player holds.
const HAND_SIZE = 5

// DECK_PATH is the default deck configuration file.
const DECK_PATH = "docs/deck.config"

// GAMES is the default number of games per experiment matchup.
const GAMES = 30

// OUT_DIR is where experiment results are written.
const OUT_DIR = "experiments"

// HUMAN marks a player driven by HumanController instead of a strategy.
const HUMAN = "human"
