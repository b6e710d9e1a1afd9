package main

// SQLite driver for the optional run journal.
import _ "modernc.org/sqlite"

func main() {
	Execute()
}
