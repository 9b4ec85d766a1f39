/*
Package lrtab is a table-driven shift-reduce parsing toolbox.

Clients hand in pre-built ACTION and GOTO tables for a grammar, together
with the grammar's productions and its terminal and non-terminal alphabets.
The parse engine decides whether an input string of terminals is derivable
from the grammar's start symbol and reports every step of the analysis.
Package structure is as follows:

■ table: Package table holds the grammar table, i.e. interned symbols,
productions and bounds-checked ACTION/GOTO lookups.

■ engine: Package engine runs the shift-reduce loop over a grammar table and
emits a trace record for every step.

■ sink: Package sink contains receivers for trace records, e.g. for text or
terminal tables.

■ loader: Package loader reads grammar tables from files.

■ scanner: Package scanner classifies input characters as terminals.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lrtab
