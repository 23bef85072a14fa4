package main

type seedQuote struct {
	author string
	text   string
}

// seedQuotes is the built-in daily quote rotation
var seedQuotes = []seedQuote{
	{"Seneca", "It is not that we have a short time to live, but that we waste a lot of it."},
	{"Marcus Aurelius", "You have power over your mind, not outside events. Realize this, and you will find strength."},
	{"Epictetus", "It's not what happens to you, but how you react to it that matters."},
	{"Lao Tzu", "A journey of a thousand miles begins with a single step."},
	{"Confucius", "It does not matter how slowly you go as long as you do not stop."},
	{"Aristotle", "We are what we repeatedly do. Excellence, then, is not an act, but a habit."},
	{"Maya Angelou", "You may not control all the events that happen to you, but you can decide not to be reduced by them."},
	{"Eleanor Roosevelt", "Do one thing every day that scares you."},
	{"Mark Twain", "The secret of getting ahead is getting started."},
	{"Theodore Roosevelt", "Do what you can, with what you have, where you are."},
	{"Henry Ford", "Whether you think you can, or you think you can't, you're right."},
	{"Thomas Edison", "I have not failed. I've just found 10,000 ways that won't work."},
	{"Albert Einstein", "In the middle of difficulty lies opportunity."},
	{"Winston Churchill", "Success is not final, failure is not fatal: it is the courage to continue that counts."},
	{"Nelson Mandela", "It always seems impossible until it's done."},
	{"Walt Disney", "The way to get started is to quit talking and begin doing."},
	{"Steve Jobs", "Your time is limited, so don't waste it living someone else's life."},
	{"Vincent van Gogh", "Great things are done by a series of small things brought together."},
	{"Leonardo da Vinci", "Simplicity is the ultimate sophistication."},
	{"Antoine de Saint-Exupery", "Perfection is achieved, not when there is nothing more to add, but when there is nothing left to take away."},
	{"Benjamin Franklin", "Well done is better than well said."},
	{"Amelia Earhart", "The most effective way to do it, is to do it."},
	{"Pablo Picasso", "Action is the foundational key to all success."},
	{"Bruce Lee", "If you spend too much time thinking about a thing, you'll never get it done."},
	{"Helen Keller", "Alone we can do so little; together we can do so much."},
	{"Ralph Waldo Emerson", "Do not go where the path may lead, go instead where there is no path and leave a trail."},
	{"Oscar Wilde", "Be yourself; everyone else is already taken."},
	{"Rumi", "The wound is the place where the light enters you."},
	{"Viktor Frankl", "When we are no longer able to change a situation, we are challenged to change ourselves."},
	{"Anne Frank", "How wonderful it is that nobody need wait a single moment before starting to improve the world."},
}
