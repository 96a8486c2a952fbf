package iocli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type Stdio struct{}

func NewStdio() IO {
	return &Stdio{}
}

func (s *Stdio) Println(a ...any) {
	fmt.Println(a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	fmt.Printf(format, a...)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// IsInteractive сообщает, подключен ли stdin к терминалу. В
// неинтерактивном режиме (pipe, cron) подтверждения невозможны и
// деструктивные команды требуют флаг --yes.
func (s *Stdio) IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
