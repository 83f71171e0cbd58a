package vm

// palette is the fixed 16-entry ARGB color table shared by all 16-color
// display modes. Grounded on original_source/src/display.c's
// DISPLAY_PALETTE array; values are carried over verbatim.
var palette = [16]uint32{
	0x00000000,
	0x00000080,
	0x00008000,
	0x00008080,
	0x00800000,
	0x00800080,
	0x00808000,
	0x00808080,

	0x00C0C0C0,
	0x000000FF,
	0x0000FF00,
	0x0000FFFF,
	0x00FF0000,
	0x00FF00FF,
	0x00FFFF00,
	0x00FFFFFF,
}
