// Package loshu analyses a calendar date through the Lo Shu grid: a fixed
// 3×3 arrangement where every cell is bound to one digit 1..9.
//
//	┌───┬───┬───┐
//	│ 4 │ 9 │ 2 │   row 0  Mental plane
//	├───┼───┼───┤
//	│ 3 │ 5 │ 7 │   row 1  Emotional plane
//	├───┼───┼───┤
//	│ 8 │ 1 │ 6 │   row 2  Practical plane
//	└───┴───┴───┘
//
// What:
//
//   - Digits extracts the flat digit multiset of day, month and 4-digit year
//     (no zero padding: March contributes "3", not "03").
//   - Grid counts how often each digit occurs; 0 is counted but has no cell.
//   - Analyze derives present, missing and repeating digits, classifies the
//     8 arrows (rows, columns, diagonals) as fully present or fully missing,
//     and scores the 3 planes as round(100 × present/3).
//
// The digit→cell table is declared once (positions); arrows and planes
// reference digits, never coordinates.
//
// Complexity: O(d) for d digits, everything else is O(1) on the fixed grid.
//
// Errors:
//
//   - ErrInvalidDate:  day/month do not form a Gregorian calendar date.
//   - ErrInvalidYear:  year outside 1000..9999.
//   - ErrInvalidDigit: NewGrid received a value outside 0..9.
package loshu
