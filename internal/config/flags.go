package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (without the program
// name). The first positional argument, if any, is used as the input path.
//
// Flags:
//
//	-a/--address          server address in format [host]:[port]
//	--adapter-address     base URL of a remote augment server
//	-p/--preset           preset name
//	-m/--group-merge      group merge direction override (append|prepend)
//	--presets-file        YAML or JSON file with extra presets
//	--profile             profile name used in diagnostics
//	-i/--input            input document path ("-" for stdin)
//	-o/--output           output document path ("-" for stdout)
//	-f/--format           document format (yaml|json)
//	--clipboard           copy the result to the clipboard
//	--request-timeout     request timeout (e.g., "30s", "1m")
//	--max-body-bytes      maximum accepted request body size
//	--log-level           log level (debug, info, warn, error)
//	-c/--config           json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var adapterAddress string
	var preset, groupMerge, presetsFile, profile string
	var input, output, format string
	var clipboard bool
	var requestTimeout time.Duration
	var maxBodyBytes int64
	var logLevel string
	var jsonConfigPath string

	fs := pflag.NewFlagSet("clash-augmenter", pflag.ContinueOnError)
	fs.VarP(&serverAddress, "address", "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "adapter-address", "", "Remote augment server URL")
	fs.StringVarP(&preset, "preset", "p", "", "Preset name")
	fs.StringVarP(&groupMerge, "group-merge", "m", "", "Group merge direction (append|prepend)")
	fs.StringVar(&presetsFile, "presets-file", "", "File with extra presets")
	fs.StringVar(&profile, "profile", "", "Profile name")
	fs.StringVarP(&input, "input", "i", "", "Input document path, - for stdin")
	fs.StringVarP(&output, "output", "o", "", "Output document path, - for stdout")
	fs.StringVarP(&format, "format", "f", "", "Document format (yaml|json)")
	fs.BoolVar(&clipboard, "clipboard", false, "Copy the result to the clipboard")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxBodyBytes, "max-body-bytes", 0, "Maximum request body size in bytes")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVarP(&jsonConfigPath, "config", "c", "", "JSON config file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if input == "" && fs.NArg() > 0 {
		input = fs.Arg(0)
	}

	return &StructuredConfig{
		App: App{
			Profile:     profile,
			Preset:      preset,
			GroupMerge:  groupMerge,
			PresetsFile: presetsFile,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxBodyBytes:   maxBodyBytes,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		IO: IO{
			Input:     input,
			Output:    output,
			Format:    format,
			Clipboard: clipboard,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
