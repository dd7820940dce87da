/*
Package mtree implements a generic, mutable, ordered n-ary tree.

Trees

A tree is made of nodes, each carrying an optional value of type parameter T,
an ordered list of children and a link to its parent. A node owns its
children; the parent link is used for upward navigation only. Nodes are
created standalone and become attached when added to another node:

	root := mtree.New(0)
	n20 := mtree.New(20)
	root.Add(mtree.New(10))
	root.Add(n20)
	n20.Add(mtree.New(21))
	n20.Add(mtree.New(22))

Mutations guard the structural invariants of the tree: a node can have at most
one parent, and no node may become its own ancestor. Violations are reported
as errors wrapping ErrStructuralViolation.

Traversal

Nodes may be visited in preorder, postorder or breadth-first order. Iterators
are lazy and can be consumed only once:

	it := root.PreorderIterator()
	for node, ok := it.Next(); ok; node, ok = it.Next() {
	    fmt.Println(node.Value())      // 0 10 20 21 22
	}

A depth-first iterator visits nodes exactly in postorder. This mirrors the
behaviour of the classic mutable tree node of GUI toolkits, whose semantics
this package follows for navigation and relationship queries.

Concurrency

Trees are not synchronized. Structural mutation is expected to originate from
a single owner at a time, and iterating a tree while mutating it gives
unspecified results. Whole trees may be handed to other goroutines.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package mtree
