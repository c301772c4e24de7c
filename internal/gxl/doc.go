// Package gxl reads task graphs stored in the GXL graph-exchange format and
// extracts the typed attributes attached to their graph, node and edge
// elements.
//
// The format is deliberately treated as closed: every <attr> element must
// carry exactly one value child, and that child must be either <int> or
// <string>. Anything else is rejected with a typed error so that a malformed
// fixture is reported rather than silently misread.
//
// A minimal document looks like this:
//
//	<gxl>
//	  <graph id="example">
//	    <attr name="Total schedule length"><int>8</int></attr>
//	    <node id="A">
//	      <attr name="Weight"><int>5</int></attr>
//	    </node>
//	    <edge from="A" to="B">
//	      <attr name="Weight"><int>2</int></attr>
//	    </edge>
//	  </graph>
//	</gxl>
package gxl
