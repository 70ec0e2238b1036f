// SPDX-License-Identifier: MIT

// Package crawl turns a directory of hypertext documents into a corpus.
//
// Every regular file in the directory whose name ends with the configured
// extension (".html" by default) becomes a page named after the file. The
// targets of its <a href="..."> elements become outbound links; corpus
// construction then drops self-references and targets that are not
// documents of the same directory. Subdirectories are not descended into.
//
// Documents are parsed concurrently on a bounded pool of workers. The result
// does not depend on scheduling: the corpus orders pages itself and link sets
// carry no order.
//
// A document that cannot be read or tokenized is logged at warn level and
// left out of the corpus. If nothing usable remains, Crawl fails with
// corpus.ErrEmptyCorpus.
package crawl
