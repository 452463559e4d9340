package cmd

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	// rkpi-hello prints the configuration it received.
	helloCmdSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("args=%%v\n", os.Args[1:])
}
`, EnvCurrency, EnvCurrency, EnvVerbose, EnvVerbose)

	helloCmdPath := filepath.Join(tempDir, "rkpi-hello")
	srcFile := helloCmdPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloCmdSource), 0644); err != nil {
		t.Fatalf("Failed to write rkpi-hello source: %v", err)
	}

	build := exec.Command("go", "build", "-o", helloCmdPath, srcFile)
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile rkpi-hello: %v", err)
	}
	log.Printf("Compiled rkpi-hello to %s", helloCmdPath)

	rkpiPath := filepath.Join(tempDir, "rkpi")
	build = exec.Command("go", "build", "-o", rkpiPath, "../rkpi")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile rkpi binary: %v", err)
	}

	rkpi := exec.Command(rkpiPath, "-currency", "XYZ", "-v", "hello", "a", "b")
	rkpi.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}

	var stdout, stderr bytes.Buffer
	rkpi.Stdout = &stdout
	rkpi.Stderr = &stderr
	if err := rkpi.Run(); err != nil {
		t.Fatalf("rkpi command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, want := range []string{
		EnvCurrency + "=XYZ",
		EnvVerbose + "=true",
		"args=[a b]",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if ok, code := RunExtension("nothing-here", nil); ok || code != 0 {
		t.Errorf("RunExtension() = %v, %d, want false, 0", ok, code)
	}
}
