package cmd

import "os"

// writeStdout writes data to the process's stdout, followed by a newline
// when data doesn't already end in one.
func writeStdout(data []byte) error {
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(append([]byte{}, data...), '\n')
	}
	_, err := os.Stdout.Write(data)
	return err
}
