// Package casio holds the byte encoding understood by the fx-9860 program
// interpreter and the G1M container format that carries compiled programs.
package casio

// Program tokens. Single-byte tokens occupy 0x00-0xfe; 0x7f and 0xf7/0xf9
// open two-byte pages. 0x20-0x7e passes through as printable ASCII (digits,
// A-Z, space, ( ) { } [ ], ~ = < > , . ? : " ').
const (
	Disp     = "\x0c" // ◢
	Carriage = "\x0d" // ↵  statement separator
	Assign   = "\x0e" // ➔  store into variable
	Exp      = "\x0f" // ᴇ  exponent marker in numerals

	LessEqual    = "\x10" // ≤
	NotEqual     = "\x11" // ≠
	GreaterEqual = "\x12" // ≥
	Implication  = "\x13" // ⇒

	Mod = "\x7f\x3a" // MOD(

	Matrix = "\x7f\x40" // Mat

	Imag = "\x7f\x50" // 𝒊
	List = "\x7f\x51" // List

	Getkey = "\x7f\x8f" // Getkey

	And = "\x7f\xb0" // And
	Or  = "\x7f\xb1" // Or
	Not = "\x7f\xb3" // Not
	Xor = "\x7f\xb4" // Xor

	IntDivide = "\x7f\xbc" // Int÷

	Sin = "\x81" // sin
	Cos = "\x82" // cos
	Tan = "\x83" // tan

	Ln         = "\x85" // ln
	SquareRoot = "\x86" // √
	Negative   = "\x87" // ‑ (high minus)

	Add = "\x89" // +

	Squared = "\x8b" // ²

	Arcsin = "\x91" // sin⁻¹
	Arccos = "\x92" // cos⁻¹
	Arctan = "\x93" // tan⁻¹

	Log      = "\x95" // log
	CubeRoot = "\x96" // ³√
	Absolute = "\x97" // Abs

	Subtract = "\x99" // -

	Inverse = "\x9b" // ⁻¹

	Sinh = "\xa1" // sinh
	Cosh = "\xa2" // cosh
	Tanh = "\xa3" // tanh

	EPower = "\xa5" // e^
	Int    = "\xa6" // Int

	Power    = "\xa8" // ^
	Multiply = "\xa9" // ×

	Factorial = "\xab" // !

	TenPower = "\xb5" // ₁₀

	XthRoot = "\xb8" // ᕽ√
	Divide  = "\xb9" // ÷

	Answer    = "\xc0" // Ans
	RandFloat = "\xc1" // Ran#

	Radius = "\xcd" // r
	Theta  = "\xce" // θ

	Pi          = "\xd0" // π
	ClearScreen = "\xd1" // Cls

	Floor = "\xde" // Intg

	Label = "\xe2" // Lbl

	Decrement = "\xe8" // Dsz
	Increment = "\xe9" // Isz

	Goto = "\xec" // Goto

	Program = "\xed" // Prog

	If        = "\xf7\x00" // If
	Then      = "\xf7\x01" // Then
	Else      = "\xf7\x02" // Else
	IfEnd     = "\xf7\x03" // IfEnd
	For       = "\xf7\x04" // For
	To        = "\xf7\x05" // To
	Step      = "\xf7\x06" // Step
	Next      = "\xf7\x07" // Next
	While     = "\xf7\x08" // While
	WhileEnd  = "\xf7\x09" // WhileEnd
	Do        = "\xf7\x0a" // Do
	LoopWhile = "\xf7\x0b" // LpWhile
	Return    = "\xf7\x0c" // Return
	Break     = "\xf7\x0d" // Break
	Stop      = "\xf7\x0e" // Stop

	Locate = "\xf7\x10" // Locate

	ClrText  = "\xf7\x18" // ClrText
	ClrGraph = "\xf7\x19" // ClrGraph
	ClrList  = "\xf7\x1a" // ClrList

	StrJoin    = "\xf9\x30" // StrJoin(
	StrLength  = "\xf9\x31" // StrLen(
	StrCompare = "\xf9\x32" // StrCmp(
	StrSearch  = "\xf9\x33" // StrSrc(
	StrLeft    = "\xf9\x34" // StrLeft(
	StrRight   = "\xf9\x35" // StrRight(
	StrMid     = "\xf9\x36" // StrMid(
	ExpToStr   = "\xf9\x37" // Exp⏵Str(
	Expression = "\xf9\x38" // Exp(
	StrUpper   = "\xf9\x39" // StrUpr(
	StrLower   = "\xf9\x3a" // StrLwr(
	StrInverse = "\xf9\x3b" // StrInv(
	StrShift   = "\xf9\x3c" // StrShift(
	StrRotate  = "\xf9\x3d" // StrRotate(

	Str = "\xf9\x3f" // Str

	Menu = "\xf7\x9e" // Menu
)
