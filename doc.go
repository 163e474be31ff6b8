/*
Package hwnet resolves the nets of a hierarchical hardware design.

A design is a tree of components owning signals: input ports, output ports,
wires and constants. Struct signals expose their fields as derived signals
and any signal can be sliced into bit ranges. Connections declared between
signals are grouped into nets, sets of signals carrying the same value.

Elaboration finds the single writer of each net, the member whose value
determines all others, and checks that each connection follows the flow of
data in the hierarchy: up from a sub-component through output ports, across
a component through wires and down to a sub-component through input ports.

The resulting NetList is meant to be consumed by simulators and translators
that need to know which signal drives which.

*/
package hwnet
