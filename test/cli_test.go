package test

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	testserver "github.com/kcctl/kcctl/test/test-server"
)

var (
	update = flag.Bool("update", false, "update golden files")
	debug  = flag.Bool("debug", false, "enable verbose output")
)

const testBin = "kcctl_test"

// CLITest fixtures
type CLITest struct {
	// Name to show in go test output; defaults to args if not set
	name string
	// The CLI command being tested; this is a string of args and flags passed to the binary
	args string
	// The set of environment variables to be set when the CLI is run
	env []string
	// Expected exit code; "error" prefixed names default to 1
	wantErrCode int
	// If true, don't reset the config and worker before running this test
	workflow bool
	// The golden output file to compare to
	fixture string
	// Expected output to be a substring of the actual output
	contains string
	// Expected output to not be a substring of the actual output
	notContains string
	// Optional functional assertion that runs after the command
	wantFunc func(t *testing.T)
}

type CLITestSuite struct {
	suite.Suite
	binary     string
	configFile string
	backend    *testserver.TestBackend
}

func TestCLI(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping binary tests in short mode")
	}
	req := require.New(s.T())

	dir := s.T().TempDir()
	s.binary = filepath.Join(dir, testBin)
	s.configFile = filepath.Join(dir, "config.json")

	build := exec.Command("go", "build", "-o", s.binary, "./cmd/kcctl")
	build.Dir = repoRoot(s.T())
	output, err := build.CombinedOutput()
	req.NoError(err, string(output))

	s.backend = testserver.StartTestBackend(s.T())
}

func (s *CLITestSuite) TearDownSuite() {
	if s.backend != nil {
		s.backend.Close()
	}
}

func (s *CLITestSuite) Test_Help() {
	tests := []CLITest{
		{name: "no args", contains: "Manage Kafka Connect clusters from the command line."},
		{args: "help", contains: "apply"},
		{args: "--help", notContains: "completion"},
		{args: "apply --help", contains: "--parallelism"},
		{args: "config context --help", contains: "use"},
		{name: "error unknown command", args: "nope", contains: "unknown command \"nope\""},
	}
	for _, tt := range tests {
		s.runTest(tt)
	}
}

func (s *CLITestSuite) Test_Apply() {
	tests := []CLITest{
		{args: "apply -f " + inputPath("local-file-source.json"), fixture: "apply-created.golden"},
		{args: "apply -f " + inputPath("local-file-source.json"), fixture: "apply-updated.golden", workflow: true},
		{
			name:    "batch of json and properties",
			args:    fmt.Sprintf("apply -f %s -f %s --parallelism 2", inputPath("local-file-source.json"), inputPath("local-file-sink.properties")),
			fixture: "apply-batch.golden",
			wantFunc: func(t *testing.T) {
				require.Equal(t, "FileStreamSink", s.backend.Connect.Connector("local-file-sink")["connector.class"])
			},
		},
		{
			name:     "error validation failure",
			args:     "apply -f " + inputPath("broken-tasks-max.json"),
			contains: "  tasks.max: Not a number of type INT",
			wantFunc: func(t *testing.T) {
				require.Nil(t, s.backend.Connect.Connector("broken-source"))
			},
		},
		{
			name:     "error missing name",
			args:     "apply -f " + inputPath("nameless.json"),
			contains: "has no \"name\" property",
			wantFunc: func(t *testing.T) {
				require.Empty(t, s.backend.Connect.Requests())
			},
		},
		{
			name:     "error one of two fails",
			args:     fmt.Sprintf("apply -f %s -f %s", inputPath("broken-tasks-max.json"), inputPath("local-file-source.json")),
			contains: "1 of 2 connector configurations failed to apply",
		},
		{name: "error no files", args: "apply", contains: "no connector configurations given"},
	}
	for _, tt := range tests {
		s.runTest(tt)
	}
}

func (s *CLITestSuite) Test_Connector() {
	tests := []CLITest{
		{args: "apply -f " + inputPath("local-file-source.json"), fixture: "apply-created.golden"},
		{args: "connector list", contains: "local-file-source", workflow: true},
		{args: "connector describe local-file-source -o json", contains: "\"connector.class\": \"FileStreamSource\"", workflow: true},
		{args: "connector delete local-file-source", fixture: "connector-delete.golden", workflow: true},
		{args: "connector delete local-file-source", fixture: "connector-delete-absent.golden", workflow: true},
		{name: "error describe missing", args: "connector describe local-file-source", contains: "connector \"local-file-source\" does not exist", workflow: true},
	}
	for _, tt := range tests {
		s.runTest(tt)
	}
}

func (s *CLITestSuite) Test_Context() {
	tests := []CLITest{
		{args: "info", contains: testserver.WorkerKafkaClusterID},
		{args: "config context current", contains: "local", workflow: true},
		{name: "env override of context", args: "info", env: []string{"KCCTL_CONTEXT=missing"}, wantErrCode: 1, contains: "context \"missing\" does not exist", workflow: true},
		{name: "error flag beats env", args: "info --context other", env: []string{"KCCTL_CONTEXT=local"}, contains: "context \"other\" does not exist", workflow: true},
		{name: "error use unknown", args: "config context use other", contains: "context \"other\" does not exist", workflow: true},
		{args: "config context current", contains: "local", workflow: true},
	}
	for _, tt := range tests {
		s.runTest(tt)
	}
}

func (s *CLITestSuite) runTest(tt CLITest) {
	if tt.name == "" {
		tt.name = tt.args
	}
	if strings.HasPrefix(tt.name, "error") {
		tt.wantErrCode = 1
	}

	s.T().Run(tt.name, func(t *testing.T) {
		if !tt.workflow {
			s.resetConfiguration(t)
		}
		output := s.runCommand(t, tt.env, tt.args, tt.wantErrCode)
		if *debug {
			fmt.Println(output)
		}
		s.validateTestOutput(tt, t, output)
	})
}

func (s *CLITestSuite) validateTestOutput(tt CLITest, t *testing.T, output string) {
	if *update && tt.fixture != "" {
		writeFixture(t, tt.fixture, output)
	}
	actual := output
	if tt.contains != "" {
		require.Contains(t, actual, tt.contains)
	} else if tt.notContains != "" {
		require.NotContains(t, actual, tt.notContains)
	} else if tt.fixture != "" {
		require.Equal(t, loadFixture(t, tt.fixture), actual)
	}
	if tt.wantFunc != nil {
		tt.wantFunc(t)
	}
}

func (s *CLITestSuite) runCommand(t *testing.T, env []string, args string, wantErrCode int) string {
	var argv []string
	if args != "" {
		argv = strings.Split(args, " ")
	}
	command := exec.Command(s.binary, argv...)
	command.Env = append(os.Environ(), "KCCTL_CONFIG="+s.configFile, "NO_COLOR=1")
	command.Env = append(command.Env, env...)

	output, err := command.CombinedOutput()
	exitCode := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		require.Failf(t, "unable to run binary", "%s: %v", args, err)
	}
	if exitCode != 0 && wantErrCode == 0 {
		require.Failf(t, "unexpected error", "exit %d: %s\n%s", exitCode, args, output)
	}
	require.Equal(t, wantErrCode, exitCode, string(output))
	return string(output)
}

// resetConfiguration points a fresh "local" context at the fake worker and empties the worker.
func (s *CLITestSuite) resetConfiguration(t *testing.T) {
	require.NoError(t, os.RemoveAll(s.configFile))
	s.runCommand(t, nil, "config context set local --cluster "+s.backend.GetConnectUrl(), 0)
	s.runCommand(t, nil, "config context use local", 0)
	s.backend.Connect.DeleteAllConnectors()
}

func writeFixture(t *testing.T, fixture string, content string) {
	err := os.WriteFile(fixturePath(t, fixture), []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}
}

func loadFixture(t *testing.T, fixture string) string {
	content, err := os.ReadFile(fixturePath(t, fixture))
	if err != nil {
		t.Fatal(err)
	}
	return string(content)
}

func fixturePath(t *testing.T, fixture string) string {
	return filepath.Join(testDir(t), "fixtures", "output", fixture)
}

func inputPath(name string) string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "fixtures", "input", name)
}

func testDir(t *testing.T) string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("problems recovering caller information")
	}
	return filepath.Dir(filename)
}

func repoRoot(t *testing.T) string {
	return filepath.Dir(testDir(t))
}
