package engine

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/seekerror/logw"
)

// ReadStdinLines streams stdin, one line per value, until EOF or the
// scanner errors, then closes the channel.
func ReadStdinLines(ctx context.Context) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			ret <- scanner.Text()
		}
	}()
	return ret
}

// WriteStdoutLines writes every line received on out to stdout until the
// channel is closed.
func WriteStdoutLines(ctx context.Context, out <-chan string) {
	for line := range out {
		logw.Debugf(ctx, ">> %v", line)
		_, _ = fmt.Fprintln(os.Stdout, line)
	}
}
