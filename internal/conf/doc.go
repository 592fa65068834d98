package conf

// Package conf implements drop-in configuration file support for insights-core.
//
// # Usage
//
// The global Configuration variable is automatically loaded at package initialization:
//
//	import "github.com/SH118415/insights-core/internal/conf"
//
//	func main() {
//	    fmt.Println(conf.Configuration.LogLevel)
//	}
//
// For custom configuration loading (e.g., testing), use ConfigSource:
//
//	cs := &conf.ConfigSource{
//	    Path:      "/custom/path/config.toml",
//	    DropInDir: "/custom/path/config.toml.d",
//	}
//	config, err := cs.Read()
//
// # Load Order
//
// Config is loaded and applied in four layers:
//
//  1. In-memory defaults
//  2. Legacy client config: /etc/insights-client/insights-client.conf (INI)
//  3. Main config file: /etc/insights-core/config.toml
//  4. Drop-in files: /etc/insights-core/config.toml.d/*.toml, in lexicographic order
//
// The legacy layer keeps hosts that were configured for the old Python
// client working without intervention; only the settings that still
// mean something here are honored.
//
// # Internal Architecture
//
// The implementation uses a DTO (Data Transfer Object) pattern with clear
// separation of concerns:
//
//   - configDTO: internal struct with pointer fields for TOML parsing.
//     Pointers allow distinguishing "not set" (nil) from "set to zero value".
//
//   - Config: public struct with value fields. Has Update() method
//     to apply DTO values.
//
//   - ConfigSource: orchestrates loading from multiple sources and manages
//     their merging.
//
//   - parseConfigDTO: function that parses TOML string into configDTO.
//     Separate from loading for clean separation of I/O and parsing.
