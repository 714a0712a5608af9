/*
Package kvvm is a deterministic reference engine for x/wasm.

A code blob is the wasm magic "\x00asm", a little-endian uint32 version,
then an opaque body. Only version 1 is known. Every contract of every code
speaks the same JSON key-value interface:

	instantiate, migrate: {"<key>": "<value>", ...}  stores every pair
	execute:              {"set": {"key": "k", "value": "v"}}
	                      {"delete": {"key": "k"}}
	                      {"fail": {"reason": "r"}}
	query:                {"get": {"key": "k"}}  -> {"value": "v" | null}
	                      {"list": {}}           -> {"entries": [{"key", "value"}, ...]}

Each call is charged a flat cost plus a cost per message byte before it
runs, and list queries pay per returned entry. Storage access is charged by
the store handed to the call.
*/
package kvvm
