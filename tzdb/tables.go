// Code generated from IANA tzdb release 2025a by the offline table
// compiler; do not edit by hand.
//
// Each table lists the recorded offset switches of a zone from 2018
// onwards. The first entry carries the state in effect at the start of
// the window; instants beyond the final entry are governed by the
// zone's POSIX extension string.

package tzdb

import "github.com/mhartig/tzresolve/tzone"

type zoneDef struct {
	name  string
	table tzone.Table
	posix string
}

var zUtc = tzone.Table{
	{At: 1514764800, Offset: tzone.Offset{Seconds: 0, Abbrev: "UTC"}},
}

var zEuropeBerlin = tzone.Table{
	{At: 1514764800, Offset: tzone.Offset{Seconds: 3600, Abbrev: "CET"}},
	{At: 1521939600, Offset: tzone.Offset{Seconds: 7200, DST: true, Abbrev: "CEST"}},
	{At: 1540688400, Offset: tzone.Offset{Seconds: 3600, Abbrev: "CET"}},
	{At: 1553994000, Offset: tzone.Offset{Seconds: 7200, DST: true, Abbrev: "CEST"}},
	{At: 1572138000, Offset: tzone.Offset{Seconds: 3600, Abbrev: "CET"}},
	{At: 1585443600, Offset: tzone.Offset{Seconds: 7200, DST: true, Abbrev: "CEST"}},
	{At: 1603587600, Offset: tzone.Offset{Seconds: 3600, Abbrev: "CET"}},
	{At: 1616893200, Offset: tzone.Offset{Seconds: 7200, DST: true, Abbrev: "CEST"}},
	{At: 1635642000, Offset: tzone.Offset{Seconds: 3600, Abbrev: "CET"}},
	{At: 1648342800, Offset: tzone.Offset{Seconds: 7200, DST: true, Abbrev: "CEST"}},
	{At: 1667091600, Offset: tzone.Offset{Seconds: 3600, Abbrev: "CET"}},
	{At: 1679792400, Offset: tzone.Offset{Seconds: 7200, DST: true, Abbrev: "CEST"}},
	{At: 1698541200, Offset: tzone.Offset{Seconds: 3600, Abbrev: "CET"}},
	{At: 1711846800, Offset: tzone.Offset{Seconds: 7200, DST: true, Abbrev: "CEST"}},
	{At: 1729990800, Offset: tzone.Offset{Seconds: 3600, Abbrev: "CET"}},
	{At: 1743296400, Offset: tzone.Offset{Seconds: 7200, DST: true, Abbrev: "CEST"}},
	{At: 1761440400, Offset: tzone.Offset{Seconds: 3600, Abbrev: "CET"}},
}

var zEuropeLondon = tzone.Table{
	{At: 1514764800, Offset: tzone.Offset{Seconds: 0, Abbrev: "GMT"}},
	{At: 1521939600, Offset: tzone.Offset{Seconds: 3600, DST: true, Abbrev: "BST"}},
	{At: 1540688400, Offset: tzone.Offset{Seconds: 0, Abbrev: "GMT"}},
	{At: 1553994000, Offset: tzone.Offset{Seconds: 3600, DST: true, Abbrev: "BST"}},
	{At: 1572138000, Offset: tzone.Offset{Seconds: 0, Abbrev: "GMT"}},
	{At: 1585443600, Offset: tzone.Offset{Seconds: 3600, DST: true, Abbrev: "BST"}},
	{At: 1603587600, Offset: tzone.Offset{Seconds: 0, Abbrev: "GMT"}},
	{At: 1616893200, Offset: tzone.Offset{Seconds: 3600, DST: true, Abbrev: "BST"}},
	{At: 1635642000, Offset: tzone.Offset{Seconds: 0, Abbrev: "GMT"}},
	{At: 1648342800, Offset: tzone.Offset{Seconds: 3600, DST: true, Abbrev: "BST"}},
	{At: 1667091600, Offset: tzone.Offset{Seconds: 0, Abbrev: "GMT"}},
	{At: 1679792400, Offset: tzone.Offset{Seconds: 3600, DST: true, Abbrev: "BST"}},
	{At: 1698541200, Offset: tzone.Offset{Seconds: 0, Abbrev: "GMT"}},
	{At: 1711846800, Offset: tzone.Offset{Seconds: 3600, DST: true, Abbrev: "BST"}},
	{At: 1729990800, Offset: tzone.Offset{Seconds: 0, Abbrev: "GMT"}},
	{At: 1743296400, Offset: tzone.Offset{Seconds: 3600, DST: true, Abbrev: "BST"}},
	{At: 1761440400, Offset: tzone.Offset{Seconds: 0, Abbrev: "GMT"}},
}

var zEuropeDublin = tzone.Table{
	{At: 1514764800, Offset: tzone.Offset{Seconds: 0, DST: true, Abbrev: "GMT"}},
	{At: 1521939600, Offset: tzone.Offset{Seconds: 3600, Abbrev: "IST"}},
	{At: 1540688400, Offset: tzone.Offset{Seconds: 0, DST: true, Abbrev: "GMT"}},
	{At: 1553994000, Offset: tzone.Offset{Seconds: 3600, Abbrev: "IST"}},
	{At: 1572138000, Offset: tzone.Offset{Seconds: 0, DST: true, Abbrev: "GMT"}},
	{At: 1585443600, Offset: tzone.Offset{Seconds: 3600, Abbrev: "IST"}},
	{At: 1603587600, Offset: tzone.Offset{Seconds: 0, DST: true, Abbrev: "GMT"}},
	{At: 1616893200, Offset: tzone.Offset{Seconds: 3600, Abbrev: "IST"}},
	{At: 1635642000, Offset: tzone.Offset{Seconds: 0, DST: true, Abbrev: "GMT"}},
	{At: 1648342800, Offset: tzone.Offset{Seconds: 3600, Abbrev: "IST"}},
	{At: 1667091600, Offset: tzone.Offset{Seconds: 0, DST: true, Abbrev: "GMT"}},
	{At: 1679792400, Offset: tzone.Offset{Seconds: 3600, Abbrev: "IST"}},
	{At: 1698541200, Offset: tzone.Offset{Seconds: 0, DST: true, Abbrev: "GMT"}},
	{At: 1711846800, Offset: tzone.Offset{Seconds: 3600, Abbrev: "IST"}},
	{At: 1729990800, Offset: tzone.Offset{Seconds: 0, DST: true, Abbrev: "GMT"}},
	{At: 1743296400, Offset: tzone.Offset{Seconds: 3600, Abbrev: "IST"}},
	{At: 1761440400, Offset: tzone.Offset{Seconds: 0, DST: true, Abbrev: "GMT"}},
}

var zAmericaNewYork = tzone.Table{
	{At: 1514764800, Offset: tzone.Offset{Seconds: -18000, Abbrev: "EST"}},
	{At: 1520751600, Offset: tzone.Offset{Seconds: -14400, DST: true, Abbrev: "EDT"}},
	{At: 1541311200, Offset: tzone.Offset{Seconds: -18000, Abbrev: "EST"}},
	{At: 1552201200, Offset: tzone.Offset{Seconds: -14400, DST: true, Abbrev: "EDT"}},
	{At: 1572760800, Offset: tzone.Offset{Seconds: -18000, Abbrev: "EST"}},
	{At: 1583650800, Offset: tzone.Offset{Seconds: -14400, DST: true, Abbrev: "EDT"}},
	{At: 1604210400, Offset: tzone.Offset{Seconds: -18000, Abbrev: "EST"}},
	{At: 1615705200, Offset: tzone.Offset{Seconds: -14400, DST: true, Abbrev: "EDT"}},
	{At: 1636264800, Offset: tzone.Offset{Seconds: -18000, Abbrev: "EST"}},
	{At: 1647154800, Offset: tzone.Offset{Seconds: -14400, DST: true, Abbrev: "EDT"}},
	{At: 1667714400, Offset: tzone.Offset{Seconds: -18000, Abbrev: "EST"}},
	{At: 1678604400, Offset: tzone.Offset{Seconds: -14400, DST: true, Abbrev: "EDT"}},
	{At: 1699164000, Offset: tzone.Offset{Seconds: -18000, Abbrev: "EST"}},
	{At: 1710054000, Offset: tzone.Offset{Seconds: -14400, DST: true, Abbrev: "EDT"}},
	{At: 1730613600, Offset: tzone.Offset{Seconds: -18000, Abbrev: "EST"}},
	{At: 1741503600, Offset: tzone.Offset{Seconds: -14400, DST: true, Abbrev: "EDT"}},
	{At: 1762063200, Offset: tzone.Offset{Seconds: -18000, Abbrev: "EST"}},
}

var zAmericaSaoPaulo = tzone.Table{
	{At: 1514764800, Offset: tzone.Offset{Seconds: -7200, DST: true, Abbrev: "-02"}},
	{At: 1518919200, Offset: tzone.Offset{Seconds: -10800, Abbrev: "-03"}},
	{At: 1541300400, Offset: tzone.Offset{Seconds: -7200, DST: true, Abbrev: "-02"}},
	{At: 1550368800, Offset: tzone.Offset{Seconds: -10800, Abbrev: "-03"}},
}

var zAsiaTokyo = tzone.Table{
	{At: 1514764800, Offset: tzone.Offset{Seconds: 32400, Abbrev: "JST"}},
}

var zAsiaKolkata = tzone.Table{
	{At: 1514764800, Offset: tzone.Offset{Seconds: 19800, Abbrev: "IST"}},
}

var zAustraliaSydney = tzone.Table{
	{At: 1514764800, Offset: tzone.Offset{Seconds: 39600, DST: true, Abbrev: "AEDT"}},
	{At: 1522512000, Offset: tzone.Offset{Seconds: 36000, Abbrev: "AEST"}},
	{At: 1538841600, Offset: tzone.Offset{Seconds: 39600, DST: true, Abbrev: "AEDT"}},
	{At: 1554566400, Offset: tzone.Offset{Seconds: 36000, Abbrev: "AEST"}},
	{At: 1570291200, Offset: tzone.Offset{Seconds: 39600, DST: true, Abbrev: "AEDT"}},
	{At: 1586016000, Offset: tzone.Offset{Seconds: 36000, Abbrev: "AEST"}},
	{At: 1601740800, Offset: tzone.Offset{Seconds: 39600, DST: true, Abbrev: "AEDT"}},
	{At: 1617465600, Offset: tzone.Offset{Seconds: 36000, Abbrev: "AEST"}},
	{At: 1633190400, Offset: tzone.Offset{Seconds: 39600, DST: true, Abbrev: "AEDT"}},
	{At: 1648915200, Offset: tzone.Offset{Seconds: 36000, Abbrev: "AEST"}},
	{At: 1664640000, Offset: tzone.Offset{Seconds: 39600, DST: true, Abbrev: "AEDT"}},
	{At: 1680364800, Offset: tzone.Offset{Seconds: 36000, Abbrev: "AEST"}},
	{At: 1696089600, Offset: tzone.Offset{Seconds: 39600, DST: true, Abbrev: "AEDT"}},
	{At: 1712419200, Offset: tzone.Offset{Seconds: 36000, Abbrev: "AEST"}},
	{At: 1728144000, Offset: tzone.Offset{Seconds: 39600, DST: true, Abbrev: "AEDT"}},
	{At: 1743868800, Offset: tzone.Offset{Seconds: 36000, Abbrev: "AEST"}},
	{At: 1759593600, Offset: tzone.Offset{Seconds: 39600, DST: true, Abbrev: "AEDT"}},
}

var zones = []zoneDef{
	{name: "UTC", table: zUtc, posix: "UTC0"},
	{name: "Europe/Berlin", table: zEuropeBerlin, posix: "CET-1CEST,M3.5.0,M10.5.0/3"},
	{name: "Europe/London", table: zEuropeLondon, posix: "GMT0BST,M3.5.0/1,M10.5.0"},
	{name: "Europe/Dublin", table: zEuropeDublin, posix: "IST-1GMT0,M10.5.0,M3.5.0/1"},
	{name: "America/New_York", table: zAmericaNewYork, posix: "EST5EDT,M3.2.0,M11.1.0"},
	{name: "America/Sao_Paulo", table: zAmericaSaoPaulo, posix: "<-03>3"},
	{name: "Asia/Tokyo", table: zAsiaTokyo, posix: "JST-9"},
	{name: "Asia/Kolkata", table: zAsiaKolkata, posix: "IST-5:30"},
	{name: "Australia/Sydney", table: zAustraliaSydney, posix: "AEST-10AEDT,M10.1.0,M4.1.0/3"},
}
