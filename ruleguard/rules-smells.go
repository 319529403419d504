package gorules

import "github.com/quasilyte/go-ruleguard/dsl"

func smells(m dsl.Matcher) {
	// Two consecutive guards returning the same value are combinable:
	//   if a { return err }
	//   if b { return err }
	// => if a || b { return err }
	m.Match(`if $c1 { return $ret }; if $c2 { return $ret }`).
		Report(`two consecutive guards return the same value; consider merging conditions with ||`).
		Suggest(`if $c1 || $c2 { return $ret }`)

	// Same shape with continue inside loops.
	m.Match(`if $c1 { continue }; if $c2 { continue }`).
		Report(`two consecutive continues; consider merging conditions with ||`).
		Suggest(`if $c1 || $c2 { continue }`)

	// Nested for-loops are a useful refactor signal even when correct.
	m.Match(`for $*_ { for $*_ { $*_ } }`).
		Report(`nested for-loop; consider extracting inner loop logic or reducing algorithmic complexity`)

	// Wrapped errors keep the upstream cause inspectable with errors.Is/As.
	m.Match(`fmt.Errorf($msg, $err)`).
		Where(m["msg"].Text.Matches(`".*%v"`) && m["err"].Type.Implements(`error`)).
		Report(`use %w instead of %v when wrapping an error so callers can unwrap it`)
}
