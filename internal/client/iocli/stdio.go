package iocli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Геометрия терминала по умолчанию, когда stdout не является терминалом
const (
	defaultTermWidth  = 80
	defaultTermHeight = 24
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

func (s *Stdio) Write(p []byte) (n int, err error) {
	return os.Stdout.Write(p)
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

// Confirm задает вопрос да/нет; подтверждением считается только "y"/"yes"
func (s *Stdio) Confirm(prompt string) (bool, error) {
	input, err := s.ReadInput(prompt + " [y/N]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(input) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// TermSize возвращает размеры терминала; вне терминала — 80x24
// Высота используется как viewport для расчёта видимого окна строк
func (s *Stdio) TermSize() (width, height int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultTermWidth, defaultTermHeight
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return defaultTermWidth, defaultTermHeight
	}
	return width, height
}
