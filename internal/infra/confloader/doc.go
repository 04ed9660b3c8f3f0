// Package confloader loads configuration with koanf.
//
// Sources are merged in increasing priority:
//
//  1. Default values (already present in the target struct)
//  2. YAML configuration file
//  3. Environment variables (CRIBCRACK_SECTION_KEY)
//  4. Command-line flags, passed in as a flat map via LoadMap
package confloader
