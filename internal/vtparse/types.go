// Package vtparse turns a decoded rune stream from a pseudo-terminal into
// a typed, append-only sequence of stream elements: text runs and
// classified xterm/VT100/VT220/VT300 control functions.
package vtparse

import "strconv"

// ElementKind discriminates the two StreamElement cases.
type ElementKind int

const (
	ElementText ElementKind = iota
	ElementControl
)

// ControlSequenceType is the closed set of control-function classifications
// a raw sequence can be tagged with. UNKNOWN covers any final character the
// catalog has no bucket for, or that no bucket pattern anchors against.
type ControlSequenceType string

const (
	ControlUnknown ControlSequenceType = "UNKNOWN"

	// Single-character functions (C0).
	ControlBell                  ControlSequenceType = "BELL"
	ControlBackspace             ControlSequenceType = "BACKSPACE"
	ControlCR                    ControlSequenceType = "CR"
	ControlReturnTerminalStatus  ControlSequenceType = "RETURN_TERMINAL_STATUS"
	ControlFormFeed              ControlSequenceType = "FORM_FEED"
	ControlLineFeed               ControlSequenceType = "LINE_FEED"
	ControlShiftIn               ControlSequenceType = "SHIFT_IN"
	ControlShiftOut               ControlSequenceType = "SHIFT_OUT"
	ControlHorizontalTab         ControlSequenceType = "HORIZONTAL_TAB"
	ControlVerticalTab           ControlSequenceType = "VERTICAL_TAB"

	// ESC sequences (VT100-mode).
	ControlSevenBitControls                    ControlSequenceType = "SEVEN_BIT_CONTROLS"
	ControlEightBitControls                    ControlSequenceType = "EIGHT_BIT_CONTROLS"
	ControlSetAnsiConformanceLevel1            ControlSequenceType = "SET_ANSI_CONFORMANCE_LEVEL_1"
	ControlSetAnsiConformanceLevel2            ControlSequenceType = "SET_ANSI_CONFORMANCE_LEVEL_2"
	ControlSetAnsiConformanceLevel3            ControlSequenceType = "SET_ANSI_CONFORMANCE_LEVEL_3"
	ControlDecDoubleHeightLineTopHalf          ControlSequenceType = "DEC_DOUBLE_HEIGHT_LINE_TOP_HALF"
	ControlDecDoubleHeightLineBottomHalf       ControlSequenceType = "DEC_DOUBLE_HEIGHT_LINE_BOTTOM_HALF"
	ControlDecSingleWidthLine                  ControlSequenceType = "DEC_SINGLE_WIDTH_LINE"
	ControlDecDoubleWidthLine                  ControlSequenceType = "DEC_DOUBLE_WIDTH_LINE"
	ControlDecScreenAlignmentTest              ControlSequenceType = "DEC_SCREEN_ALIGNMENT_TEST"
	ControlSelectDefaultCharacterSet           ControlSequenceType = "SELECT_DEFAULT_CHARACTER_SET"
	ControlSelectUTF8CharacterSet              ControlSequenceType = "SELECT_UTF8_CHARACTER_SET"
	ControlDesignateG0CharacterSetVT100        ControlSequenceType = "DESIGNATE_G0_CHARACTER_SET_VT100"
	ControlDesignateG1CharacterSetVT100        ControlSequenceType = "DESIGNATE_G1_CHARACTER_SET_VT100"
	ControlDesignateG2CharacterSetVT220        ControlSequenceType = "DESIGNATE_G2_CHARACTER_SET_VT220"
	ControlDesignateG3CharacterSetVT220        ControlSequenceType = "DESIGNATE_G3_CHARACTER_SET_VT220"
	ControlDesignateG1CharacterSetVT300        ControlSequenceType = "DESIGNATE_G1_CHARACTER_SET_VT300"
	ControlDesignateG2CharacterSetVT300        ControlSequenceType = "DESIGNATE_G2_CHARACTER_SET_VT300"
	ControlDesignateG3CharacterSetVT300        ControlSequenceType = "DESIGNATE_G3_CHARACTER_SET_VT300"
	ControlBackIndex                           ControlSequenceType = "BACK_INDEX"
	ControlSaveCursor                          ControlSequenceType = "SAVE_CURSOR"
	ControlRestoreCursor                       ControlSequenceType = "RESTORE_CURSOR"
	ControlForwardIndex                        ControlSequenceType = "FORWARD_INDEX"
	ControlApplicationKeypad                   ControlSequenceType = "APPLICATION_KEYPAD"
	ControlNormalKeypad                        ControlSequenceType = "NORMAL_KEYPAD"
	ControlCursorToLowerLeftCornerOfScreen     ControlSequenceType = "CURSOR_TO_LOWER_LEFT_CORNER_OF_SCREEN"
	ControlFullReset                           ControlSequenceType = "FULL_RESET"
	ControlMemoryLock                          ControlSequenceType = "MEMORY_LOCK"
	ControlMemoryUnlock                        ControlSequenceType = "MEMORY_UNLOCK"
	ControlInvokeG1CharacterSetAsGR            ControlSequenceType = "INVOKE_G1_CHARACTER_SET_AS_GR"
	ControlInvokeG2CharacterSetAsGL            ControlSequenceType = "INVOKE_G2_CHARACTER_SET_AS_GL"
	ControlInvokeG2CharacterSetAsGR            ControlSequenceType = "INVOKE_G2_CHARACTER_SET_AS_GR"
	ControlInvokeG3CharacterSetAsGL            ControlSequenceType = "INVOKE_G3_CHARACTER_SET_AS_GL"
	ControlInvokeG3CharacterSetAsGR            ControlSequenceType = "INVOKE_G3_CHARACTER_SET_AS_GR"

	// DCS sequences.
	ControlUserDefinedKeys         ControlSequenceType = "USER_DEFINED_KEYS"
	ControlRequestStatusString     ControlSequenceType = "REQUEST_STATUS_STRING"
	ControlSetTermcapData          ControlSequenceType = "SET_TERMCAP_DATA"
	ControlRequestTermcapString    ControlSequenceType = "REQUEST_TERMCAP_STRING"

	// CSI sequences.
	ControlInsertCharacters                      ControlSequenceType = "INSERT_CHARACTERS"
	ControlCursorUp                              ControlSequenceType = "CURSOR_UP"
	ControlCursorDown                            ControlSequenceType = "CURSOR_DOWN"
	ControlCursorForward                         ControlSequenceType = "CURSOR_FORWARD"
	ControlCursorBackward                        ControlSequenceType = "CURSOR_BACKWARD"
	ControlCursorNextLine                        ControlSequenceType = "CURSOR_NEXT_LINE"
	ControlCursorPrecedingLine                   ControlSequenceType = "CURSOR_PRECEDING_LINE"
	ControlCursorCharacterAbsolute               ControlSequenceType = "CURSOR_CHARACTER_ABSOLUTE"
	ControlCursorPosition                        ControlSequenceType = "CURSOR_POSITION"
	ControlCursorForwardTabulation                ControlSequenceType = "CURSOR_FORWARD_TABULATION"
	ControlEraseInDisplayED                      ControlSequenceType = "ERASE_IN_DISPLAY_ED"
	ControlEraseInDisplayDECSED                  ControlSequenceType = "ERASE_IN_DISPLAY_DECSED"
	ControlEraseInLineEL                         ControlSequenceType = "ERASE_IN_LINE_EL"
	ControlEraseInLineDECSEL                     ControlSequenceType = "ERASE_IN_LINE_DECSEL"
	ControlInsertLines                           ControlSequenceType = "INSERT_LINES"
	ControlDeleteLines                           ControlSequenceType = "DELETE_LINES"
	ControlDeleteCharacters                      ControlSequenceType = "DELETE_CHARACTERS"
	ControlScrollUpLines                         ControlSequenceType = "SCROLL_UP_LINES"
	ControlXtermGraphicsAttributes               ControlSequenceType = "XTERM_GRAPHICS_ATTRIBUTES"
	ControlScrollDownLines                       ControlSequenceType = "SCROLL_DOWN_LINES"
	ControlInitiateHighlightMouseTracking        ControlSequenceType = "INITIATE_HIGHLIGHT_MOUSE_TRACKING"
	ControlEraseCharacters                       ControlSequenceType = "ERASE_CHARACTERS"
	ControlCursorBackwardTabulation               ControlSequenceType = "CURSOR_BACKWARD_TABULATION"
	ControlCharacterPositionAbsolute             ControlSequenceType = "CHARACTER_POSITION_ABSOLUTE"
	ControlCharacterPositionRelative             ControlSequenceType = "CHARACTER_POSITION_RELATIVE"
	ControlRepeatPrecedingCharacter              ControlSequenceType = "REPEAT_PRECEDING_CHARACTER"
	ControlSendDeviceAttributesPrimary           ControlSequenceType = "SEND_DEVICE_ATTRIBUTES_PRIMARY"
	ControlSendDeviceAttributesSecondary         ControlSequenceType = "SEND_DEVICE_ATTRIBUTES_SECONDARY"
	ControlLinePositionAbsolute                  ControlSequenceType = "LINE_POSITION_ABSOLUTE"
	ControlLinePositionRelative                  ControlSequenceType = "LINE_POSITION_RELATIVE"
	ControlHorizontalAndVerticalPosition         ControlSequenceType = "HORIZONTAL_AND_VERTICAL_POSITION"
	ControlTabClear                              ControlSequenceType = "TAB_CLEAR"
	ControlSetMode                               ControlSequenceType = "SET_MODE"
	ControlDecPrivateModeSet                     ControlSequenceType = "DEC_PRIVATE_MODE_SET"
	ControlMediaCopy                             ControlSequenceType = "MEDIA_COPY"
	ControlMediaCopyDec                          ControlSequenceType = "MEDIA_COPY_DEC"
	ControlResetMode                             ControlSequenceType = "RESET_MODE"
	ControlDecPrivateModeReset                   ControlSequenceType = "DEC_PRIVATE_MODE_RESET"
	ControlCharacterAttributes                   ControlSequenceType = "CHARACTER_ATTRIBUTES"
	ControlDeviceStatusReport                    ControlSequenceType = "DEVICE_STATUS_REPORT"
	ControlDeviceStatusReportDec                 ControlSequenceType = "DEVICE_STATUS_REPORT_DEC"
	ControlSetKeyModifierOptions                 ControlSequenceType = "SET_KEY_MODIFIER_OPTIONS"
	ControlDisableKeyModifierOptions             ControlSequenceType = "DISABLE_KEY_MODIFIER_OPTIONS"
	ControlSoftTerminalReset                     ControlSequenceType = "SOFT_TERMINAL_RESET"
	ControlSetConformanceLevel                   ControlSequenceType = "SET_CONFORMANCE_LEVEL"
	ControlSelectCharacterProtectionAttribute    ControlSequenceType = "SELECT_CHARACTER_PROTECTION_ATTRIBUTE"
	ControlRequestAnsiMode                       ControlSequenceType = "REQUEST_ANSI_MODE"
	ControlRequestDecPrivateMode                 ControlSequenceType = "REQUEST_DEC_PRIVATE_MODE"
	ControlSetTopAndBottomMargins                ControlSequenceType = "SET_TOP_AND_BOTTOM_MARGINS"
	ControlRestoreDecPrivateModeValues           ControlSequenceType = "RESTORE_DEC_PRIVATE_MODE_VALUES"
	ControlChangeAttributesInRectangularArea     ControlSequenceType = "CHANGE_ATTRIBUTES_IN_RECTANGULAR_AREA"
	ControlSaveCursorAnsi                        ControlSequenceType = "SAVE_CURSOR_ANSI"
	ControlSaveDecPrivateModeValues              ControlSequenceType = "SAVE_DEC_PRIVATE_MODE_VALUES"
	ControlWindowManipulation                    ControlSequenceType = "WINDOW_MANIPULATION"
	ControlSetWarningBellVolume                  ControlSequenceType = "SET_WARNING_BELL_VOLUME"
	ControlSetMarginBellVolume                   ControlSequenceType = "SET_MARGIN_BELL_VOLUME"
	ControlInsertColumns                         ControlSequenceType = "INSERT_COLUMNS"
	ControlDeleteColumns                         ControlSequenceType = "DELETE_COLUMNS"

	// Vendor extension (Final Term shell-integration markers).
	ControlFinalTerm ControlSequenceType = "FINAL_TERM"

	// OSC.
	ControlSetTextParameters ControlSequenceType = "SET_TEXT_PARAMETERS"
)

// StreamElement is an immutable element of a parser's StreamStore: either a
// maximal run of plain text, or a classified control sequence. Once
// constructed, no field is mutated.
type StreamElement struct {
	Kind ElementKind

	// Text holds the run's content when Kind == ElementText.
	Text string

	// RawText, ControlKind and Parameters are populated when
	// Kind == ElementControl. RawText is the verbatim bytes of the
	// sequence including its inducer and terminator.
	RawText     string
	ControlKind ControlSequenceType
	Parameters  []string
}

// NumericParameter returns parameters[i] parsed as a decimal integer, or
// def if the index is out of range. A present-but-unparseable parameter
// yields 0, matching the underlying parse-int contract.
func (e StreamElement) NumericParameter(i int, def int) int {
	s, ok := e.paramAt(i)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// TextParameter returns parameters[i], or def if the index is out of range.
func (e StreamElement) TextParameter(i int, def string) string {
	s, ok := e.paramAt(i)
	if !ok {
		return def
	}
	return s
}

func (e StreamElement) paramAt(i int) (string, bool) {
	if i < 0 || i >= len(e.Parameters) {
		return "", false
	}
	return e.Parameters[i], true
}
