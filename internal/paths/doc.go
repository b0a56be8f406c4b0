// Package paths centralizes filesystem locations for the backman CLI.
//
// Locations follow the XDG base directory specification via adrg/xdg:
// configuration lives under <ConfigHome>/backman/ and the saved list state
// under <DataHome>/backman/. All other paths (backup destinations, restore
// sources, export files) are supplied by the user and never derived here.
package paths
