package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/patrickprogramme/ytscribe/internal/clipboard"
	"github.com/patrickprogramme/ytscribe/internal/page"
)

type terminalUI struct {
	reader *bufio.Reader
}

func NewTerminal() Interface {
	return &terminalUI{reader: bufio.NewReader(os.Stdin)}
}

func (t *terminalUI) GetSourceURL(ctx context.Context) (string, error) {
	// 1) clipboard
	if clip, err := clipboard.ReadAll(); err == nil {
		clip = strings.TrimSpace(clip)
		if page.IsYouTubeURL(clip) {
			t.PrintInfo(ctx, fmt.Sprintf("Utilisation de l'URL depuis le presse-papier: %s", clip))
			return clip, nil
		}
	}
	// 2) prompt
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}
		fmt.Print("Entrez l'URL d'une vidéo ou d'une chaîne Youtube: ")
		input, err := t.reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("lecture stdin: %w", err)
		}
		url := strings.TrimSpace(input)
		if page.IsYouTubeURL(url) {
			return url, nil
		}
		fmt.Println("❌ URL invalide. Essayez à nouveau.")
	}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Println(s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(os.Stderr, s)
}
