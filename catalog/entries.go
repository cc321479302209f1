package catalog

// entries is listed in presentation order.
var entries = []Entry{
	{Variables, `$myvar;`, "declared, but not assigned"},
	{Variables, "$myvar = 10;\n$myvar = 1234;", "decimal integer"},
	{Variables, `$myvar = 0b10;`, "binary integer"},
	{Variables, `$myvar = 0123;`, "octal integer"},
	{Variables, `$myvar = 0x1A;`, "hexadecimal integer"},
	{Variables, `$myfloat = 1.234;`, ""},
	{Variables, `$myfloat = 3e2;`, "scientific notation"},
	{Variables, `$mybool = true;`, ""},
	{Variables, `$myNull = null;`, ""},
	{Variables, `$myInt = $myNull + 0;`, "null converts to 0"},
	{Variables, `$myBool = $myNull == true;`, "null converts to false"},

	{Operators, `$x = 4 ** 2;`, "16"},
	{Operators, `$x++;`, "post-increment"},
	{Operators, `$x--;`, "post-decrement"},
	{Operators, `++$x;`, "pre-increment"},
	{Operators, `--$x;`, "pre-decrement"},
	{Operators, `$x = ( 2 == 3 );`, "equal"},
	{Operators, `$x = ( 2 != 3 );`, "not equal"},
	{Operators, `$x = ( 2 <> 3 );`, "not equal"},
	{Operators, `$x = ( 2 === 3 );`, "identical"},
	{Operators, `$x = ( 2 !== 3 );`, "not identical"},
	{Operators, `$x = ( 2 > 3 );`, "greater than"},
	{Operators, `$x = ( 2 < 3 );`, "less than"},
	{Operators, "$x = ( 1 <=> 1 );\n$x = ( 1 <=> 2 );\n$x = ( 3 <=> 2 );", "-1, 0, 1 ordering"},

	{Strings, "$heredoc = <<<LABEL\nHeredoc (with parsing)\nLABEL;", "heredoc, variables are expanded"},
	{Strings, "$nowdoc = <<<'LABEL'\nnowdoc (without parsing)\nLABEL;", "nowdoc, no expansion"},
	{Strings, `echo "\u{00A9}";`, "UTF-8 encoded copyright sign"},
	{Strings, "$c = 'Hello';\n$c[0] = 'J';", "Jello"},
	{Strings, "$a = 'test';\n$b = 'test';\n$c = ($a === $b);", "true"},

	{Arrays, `$a = array(1,2,3);`, ""},
	{Arrays, `$a = [1,2,3];`, "short array syntax"},
	{Arrays, `$a[] = 4;`, "$a[3]"},
	{Arrays, "$b = array('one' => 'a',\n\t'two' => 'b',\n\t'three' => 'c');", "associative array"},
	{Arrays, `$c = array(0 => 0, 1 => 1, 2 => 2);`, ""},
	{Arrays, `$e = array(5 => 5, 6);`, "6 => 6"},
	{Arrays, `$d = array(0 => 1, 'foo' => 'bar');`, "mixed keys"},
	{Arrays, `$a = array( array('00', '01'), array('10', '11') );`, "multi-dimensional"},
	{Arrays, `$a[0][0] = '00';`, ""},
	{Arrays, "$b = array('one' => array('00', '01'));\n$b['one'][0];", "'00'"},

	{Conditionals, "if (true) {\n} elseif (false) {\n} else {\n}", ""},
	{Conditionals, "if (true):\nelseif (false):\nelse:\nendif;", "alternative syntax"},
	{Conditionals, "switch ($x) {\n\tcase 1: break;\n\tcase 2: break;\n\tdefault: break;\n}", ""},
	{Conditionals, "switch ($x):\ncase 1: break;\ncase 2: break;\ndefault:\nendswitch;", "alternative syntax"},
	{Conditionals, `$y = ($x == 1) ? 1 : 2;`, "ternary"},
	{Conditionals, `($x == 1) ? $y = 1 : $y = 2;`, ""},

	{Loops, "foreach ($a as $v) {\n}", ""},
	{Loops, "foreach ($a as $v):\nendforeach;", "alternative syntax"},
	{Loops, "$a = array('one' => 1, 'two' => 2, 'three' => 3);\nforeach ($a as $k => $v) {\n}", "keys and values"},
	{Loops, "foreach ($a as $k => $v):\nendforeach;", ""},
	{Loops, "for ($i = 0; $i < 5; $i++) {\n}", ""},

	{Functions, "function myArgs($y = 'Earth') {\n\t$num = func_num_args();\n\t$y = func_get_arg(0);\n}", "default argument"},
	{Functions, "function myArgs3(...$args) {\n\tforeach ($args as $v) {\n\t}\n}", "variadic"},
	{Functions, `myArgs3(...$a);`, `"123"`},
	{Functions, "function __autoload($classname) {\n\tinclude $classname . '.php';\n}", "removed in PHP 8"},

	{Closures, "$say = function ($name) {\n};\n$say(\"Hello World\");", ""},
	{Closures, "$myClosure = function ($z) use ($x, $y) {\n\treturn $x + $y + $z;\n};\n$myClosure(3);", "captures $x and $y"},
	{Closures, "class C { private $x = 'Hi'; }\n$getC = function () { return $this->x; };\n$getX = $getC->bindTo(new C, 'C');\necho $getX();", "Hi"},
	{Closures, "$getX = function () { return $this->x; };\n$getX->call(new C);", "PHP 7"},

	{Generators, "function getNum() {\n\tfor ($i = 0; $i < 5; $i++) {\n\t\tyield $i;\n\t}\n}", ""},
	{Generators, "foreach (getNum() as $v) {\n}", ""},
	{Generators, "function countToFive() {\n\tyield 1;\n\tyield from [2, 3, 4];\n\tyield 5;\n}", "delegation"},

	{Classes, "class MyRectangle {\n\tpublic $x = 5, $y = 10;\n\tstatic $pi = 3.14;\n\tstatic function newArea($a) {\n\t\treturn self::$pi * $a * $a;\n\t}\n}", "static::$pi for late static binding"},
	{Classes, "function __construct() {\n\t$this->x = 20;\n}", ""},
	{Classes, `function __destruct() {}`, ""},
	{Classes, `function getArea() { return $this->newArea($this->x, $this->y); }`, ""},
	{Classes, `$r = new MyRectangle();`, ""},
	{Classes, "$obj = new class('Hi') {\n\tpublic $x;\n\tpublic function __construct($a) {\n\t\t$this->x = $a;\n\t}\n};\necho $obj->x;", `"Hi"`},
	{Classes, "final class NotExtendable {\n\tfinal function notOverridable() {}\n}", ""},
	{Classes, "class Square {}\n$s = new Square(5);\n$s instanceof Square;", "true"},
	{Classes, "abstract class Shape {\n\tabstract public function myAbstract();\n}", ""},

	{Constants, "class MyRectangle {\n\tconst PI = 3.14;\n}", "class constant"},
	{Constants, "define('DEBUG', 1);\necho DEBUG;", `"1"`},
	{Constants, `if (!defined('DEBUG')) {}`, ""},

	{Traits, "trait PrintFunctionality {\n\tpublic function myPrint() { echo 'Hello'; }\n}", ""},
	{Traits, "class MyClass {\n\tuse PrintFunctionality;\n}\n$o = new MyClass;\n$o->myPrint();", "Hello"},

	{Interfaces, "interface I {\n\tstatic function myArray(array $a): array;\n}", ""},
	{Interfaces, "class C implements I {\n\tstatic function myArray(array $a): array {\n\t\treturn $a;\n\t}\n}", ""},

	{Directives, `declare(strict_types=1);`, "must be the first statement"},
}
