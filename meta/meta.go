// meta/meta.go
package meta

// DEFAULT_ROWS defines the number of board rows.
const DEFAULT_ROWS = 3

// DEFAULT_COLUMNS defines the number of board columns.
const DEFAULT_COLUMNS = 3

// DEFAULT_RUN_LENGTH defines how many markers in a row win.
const DEFAULT_RUN_LENGTH = 3

// DEFAULT_MAX_DEPTH defines the search depth of the AI.
const DEFAULT_MAX_DEPTH = 9

// DEFAULT_GAMES defines the number of games per experiment matchup.
const DEFAULT_GAMES = 10

// DEFAULT_PARALLEL defines how many experiment games run at once.
const DEFAULT_PARALLEL = 4

const DEFAULT_OUTPUT_DIR = "experiments/results"

const DEFAULT_LOG_LEVEL = "info"
