package pkg

import (
	"fmt"
	"log"
	"os"
	"regexp"

	petname "github.com/dustinkirkland/golang-petname"
)

const MaxNicknameLength = 16

var nickRegexp = regexp.MustCompile(`[^a-zA-Z0-9_\-]+`)

// InitLog sends the standard logger to dest with prefix on every line.
// The returned file should be closed on exit.
func InitLog(dest, prefix string) (*os.File, error) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}

	log.SetOutput(f)
	log.SetPrefix(prefix)

	return f, nil
}

// Nickname cleans up a player supplied name. An empty result is replaced
// by a random pet name.
func Nickname(nick string) string {
	nick = nickRegexp.ReplaceAllString(nick, "")
	if len(nick) > MaxNicknameLength {
		nick = nick[:MaxNicknameLength]
	}

	if nick == "" {
		nick = petname.Generate(2, "-")
	}

	return nick
}
